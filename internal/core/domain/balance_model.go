package domain

import "github.com/shopspring/decimal"

// Balance is a tagged union over native and NFT-like holdings. Exactly one
// of the payload fields is set, matching Type.
type Balance struct {
	Type   BalanceType
	Native *NativeBalance
	NFT    *NFTBalance
}

// IsNative returns whether the balance is the chain's native token.
func (b Balance) IsNative() bool {
	return b.Type == BalanceTypeNative
}

// IsNFT groups the NFT-like variants.
func (b Balance) IsNFT() bool {
	return b.Type == BalanceTypeNFT || b.Type == BalanceTypeUnique
}

// NativeBalance is the native token balance of an account, in planck.
type NativeBalance struct {
	Free         decimal.Decimal
	Reserved     decimal.Decimal
	Frozen       decimal.Decimal
	Total        decimal.Decimal
	Transferable decimal.Decimal

	Staking           *StakingInfo
	ConvictionVoting  *ConvictionVotingInfo
	ReservedBreakdown *ReservedBreakdown
}

// StakingInfo describes the bonded portion of a native balance.
type StakingInfo struct {
	Total      decimal.Decimal
	Active     decimal.Decimal
	CanUnstake bool
	Unlocking  []UnlockingChunk
}

// UnlockingChunk is one unbonding tranche with its withdrawability.
type UnlockingChunk struct {
	Value       decimal.Decimal
	Era         uint32
	CanWithdraw bool
}

// ConvictionVotingInfo describes governance locks on a native balance.
type ConvictionVotingInfo struct {
	Votes       []GovernanceVote
	Delegations []GovernanceDelegation
	Unlockable  decimal.Decimal
	TotalLocked decimal.Decimal
}

// GovernanceVote is a conviction vote on one referendum. Votes on ongoing
// referenda are removable; ended ones only unlock after their lock period.
type GovernanceVote struct {
	ReferendumIndex uint32
	Amount          decimal.Decimal
	Ongoing         bool
}

// GovernanceDelegation is an active conviction delegation.
type GovernanceDelegation struct {
	Target     string
	Amount     decimal.Decimal
	Conviction uint8
}

// ReservedBreakdown itemizes the deposits composing the reserved amount.
type ReservedBreakdown struct {
	Identity decimal.Decimal
	Multisig decimal.Decimal
	Proxy    decimal.Decimal
	Index    decimal.Decimal
}

// Sum returns the total of the itemized deposits.
func (r *ReservedBreakdown) Sum() decimal.Decimal {
	return r.Identity.Add(r.Multisig).Add(r.Proxy).Add(r.Index)
}

// Validate checks the native balance invariants. Violations are reported,
// never silently corrected.
func (n *NativeBalance) Validate() error {
	if n.Transferable.GreaterThan(n.Total) {
		return ErrInvalidTransferable
	}
	if n.ReservedBreakdown != nil && n.ReservedBreakdown.Sum().GreaterThan(n.Reserved) {
		return ErrInvalidReservedBreakdown
	}
	return nil
}

// NFTBalance is a non-fungible holding.
type NFTBalance struct {
	CollectionID string
	ItemID       string
	Name         string
}

// NewNativeBalance builds a Balance wrapping the given native amounts.
func NewNativeBalance(native *NativeBalance) Balance {
	return Balance{Type: BalanceTypeNative, Native: native}
}
