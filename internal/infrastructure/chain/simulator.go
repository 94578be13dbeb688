package chain

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/ss58"
)

var (
	plancksPerUnit = decimal.New(1, 12)
	flatFee        = decimal.NewFromInt(156_000_000)
)

// Simulated is a chain client with deterministic synthetic state, used to
// run the daemon without a node. Whether an address is funded, and with
// how much, is a pure function of its public key, so the same device seed
// always produces the same ledger.
type Simulated struct {
	mtx       sync.Mutex
	submitted []submission
}

type submission struct {
	payload   []byte
	signature []byte
	txHash    string
}

// NewSimulated ...
func NewSimulated() *Simulated {
	return &Simulated{}
}

func (s *Simulated) GetAccountInfo(
	ctx context.Context, address string,
) (ports.AccountInfo, error) {
	pubKey, _, err := ss58.Decode(address)
	if err != nil {
		return ports.AccountInfo{}, err
	}
	if pubKey[31]%4 != 0 {
		return ports.AccountInfo{}, nil
	}

	free := plancksPerUnit.Mul(decimal.NewFromInt(int64(1 + pubKey[0]%9)))
	native := &domain.NativeBalance{
		Free:         free,
		Total:        free,
		Transferable: free,
	}

	// A slice of the funded accounts also carries a bonded portion, so
	// discovery runs surface pending staking actions.
	if pubKey[30]%8 == 0 {
		bonded := free.Div(decimal.NewFromInt(2))
		native.Free = free.Sub(bonded)
		native.Frozen = bonded
		native.Transferable = free.Sub(bonded)
		native.Staking = &domain.StakingInfo{
			Total:      bonded,
			Active:     bonded,
			CanUnstake: true,
		}
	}

	return ports.AccountInfo{
		Balances: []domain.Balance{domain.NewNativeBalance(native)},
	}, nil
}

func (s *Simulated) GetMultisigCall(
	ctx context.Context, multisigAddress, callHash string,
) (ports.MultisigCallDetail, bool, error) {
	return ports.MultisigCallDetail{}, false, nil
}

func (s *Simulated) BuildTransfer(
	ctx context.Context, transfer ports.Transfer,
) ([]byte, error) {
	return json.Marshal(transfer)
}

func (s *Simulated) EstimateFee(
	ctx context.Context, payload []byte,
) (decimal.Decimal, error) {
	return flatFee, nil
}

func (s *Simulated) Submit(
	ctx context.Context, payload, signature []byte,
) (string, error) {
	sum := blake2b.Sum256(append(append([]byte{}, payload...), signature...))
	txHash := "0x" + hex.EncodeToString(sum[:])

	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.submitted = append(s.submitted, submission{
		payload:   payload,
		signature: signature,
		txHash:    txHash,
	})
	return txHash, nil
}

// Submitted returns the transfers broadcast so far, in order.
func (s *Simulated) Submitted() []ports.Transfer {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	transfers := make([]ports.Transfer, 0, len(s.submitted))
	for _, sub := range s.submitted {
		transfer := ports.Transfer{}
		if err := json.Unmarshal(sub.payload, &transfer); err != nil {
			continue
		}
		transfers = append(transfers, transfer)
	}
	return transfers
}
