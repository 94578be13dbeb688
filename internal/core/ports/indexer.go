package ports

import "context"

// IndexedMultisig is one multisig account the indexer reports an address
// as member of.
type IndexedMultisig struct {
	Address           string
	Threshold         uint32
	Members           []string
	PendingCallHashes []string
}

// MultisigInfo is the indexer's multisig enrichment for one address.
type MultisigInfo struct {
	Multisigs []IndexedMultisig
}

// ReferendumVote is one entry of the paginated referenda listing.
type ReferendumVote struct {
	ReferendumIndex uint32
	Amount          string
	Conviction      string
	Ongoing         bool
}

// IndexerService is the external indexer consumed through the HTTP proxy.
// The found flag distinguishes absence from presence; lookup failures are
// reported as errors and degraded to absence by callers.
type IndexerService interface {
	Search(ctx context.Context, address string) (MultisigInfo, bool, error)
	Referenda(ctx context.Context, address string, page, rows int) ([]ReferendumVote, int, error)
}
