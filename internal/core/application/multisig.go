package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
)

// MultisigResolver cross-references the external indexer with on-chain
// storage to build composite multisig accounts and their pending calls.
type MultisigResolver struct {
	indexer ports.IndexerService
}

// NewMultisigResolver ...
func NewMultisigResolver(indexer ports.IndexerService) *MultisigResolver {
	return &MultisigResolver{indexer: indexer}
}

// Resolve returns the multisig accounts the given address belongs to.
// Members matching a known device-controlled address are tagged internal
// and carry that address's own derivation path. Multisig detection is
// best-effort enrichment: any indexer or chain failure yields absence,
// never a hard error.
func (r *MultisigResolver) Resolve(
	ctx context.Context,
	address string,
	chain ports.ChainClient,
	knownPaths map[string]string,
) ([]domain.MultisigAccount, bool) {
	info, found, err := r.indexer.Search(ctx, address)
	if err != nil {
		log.WithError(err).WithField("address", address).
			Debug("multisig lookup failed, treating as absence")
		return nil, false
	}
	if !found || len(info.Multisigs) == 0 {
		return nil, false
	}

	multisigs := make([]domain.MultisigAccount, 0, len(info.Multisigs))
	for _, indexed := range info.Multisigs {
		threshold := indexed.Threshold
		multisig := domain.MultisigAccount{
			AccountBase: domain.AccountBase{Address: indexed.Address},
			Threshold:   &threshold,
		}

		for _, memberAddress := range indexed.Members {
			member := domain.MultisigMember{Address: memberAddress}
			if path, ok := knownPaths[memberAddress]; ok {
				member.Internal = true
				member.Path = path
			}
			multisig.Members = append(multisig.Members, member)
		}

		calls, ok := r.resolvePendingCalls(ctx, chain, indexed)
		if !ok {
			return nil, false
		}
		multisig.PendingCalls = calls

		multisigs = append(multisigs, multisig)
	}

	return multisigs, true
}

// resolvePendingCalls recovers the pending call details from chain storage
// entries keyed by (multisig account, call hash).
func (r *MultisigResolver) resolvePendingCalls(
	ctx context.Context, chain ports.ChainClient, indexed ports.IndexedMultisig,
) ([]domain.PendingCall, bool) {
	var calls []domain.PendingCall
	for _, callHash := range indexed.PendingCallHashes {
		detail, found, err := chain.GetMultisigCall(ctx, indexed.Address, callHash)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"multisig": indexed.Address,
				"callHash": callHash,
			}).Debug("multisig call lookup failed, treating as absence")
			return nil, false
		}
		if !found {
			// The indexer can lag behind executed or cancelled calls.
			continue
		}

		calls = append(calls, domain.PendingCall{
			CallHash:  callHash,
			Depositor: detail.Depositor,
			Deposit:   detail.Deposit,
			Approvals: detail.Approvals,
			Height:    detail.Height,
			Index:     detail.Index,
		})
	}
	return calls, true
}
