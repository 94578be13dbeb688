package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
)

// AccountInfo is the on-chain state of one address as seen by the chain
// client.
type AccountInfo struct {
	Balances     []domain.Balance
	Registration *domain.Registration
	AccountIndex string
	Proxies      []domain.Proxy
}

// MultisigCallDetail is one pending multisig call read from chain storage,
// keyed by (multisig account, call hash).
type MultisigCallDetail struct {
	Depositor string
	Deposit   decimal.Decimal
	Approvals []string
	Height    uint64
	Index     uint32
}

// Transfer describes a native balance transfer to be built and submitted.
type Transfer struct {
	Sender      string
	Destination string
	Amount      decimal.Decimal
}

// ChainClient is the per-network handle for storage queries, fee
// estimation and extrinsic submission.
type ChainClient interface {
	GetAccountInfo(ctx context.Context, address string) (AccountInfo, error)

	// GetMultisigCall returns the pending call stored for the given
	// multisig account and call hash. The second return value reports
	// absence without an error.
	GetMultisigCall(ctx context.Context, multisigAddress, callHash string) (MultisigCallDetail, bool, error)

	// BuildTransfer constructs the signing payload for a transfer.
	BuildTransfer(ctx context.Context, transfer Transfer) ([]byte, error)

	// EstimateFee returns the fee of the constructed call.
	EstimateFee(ctx context.Context, payload []byte) (decimal.Decimal, error)

	// Submit broadcasts the payload with its device signature and returns
	// the extrinsic hash.
	Submit(ctx context.Context, payload, signature []byte) (string, error)
}
