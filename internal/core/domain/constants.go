package domain

// SyncStatus represents the synchronization state of an app.
type SyncStatus int

const (
	// SyncStatusIdle ...
	SyncStatusIdle SyncStatus = iota
	// SyncStatusLoading ...
	SyncStatusLoading
	// SyncStatusSynchronized ...
	SyncStatusSynchronized
	// SyncStatusError ...
	SyncStatusError
)

func (s SyncStatus) String() string {
	switch s {
	case SyncStatusLoading:
		return "loading"
	case SyncStatusSynchronized:
		return "synchronized"
	case SyncStatusError:
		return "error"
	default:
		return "idle"
	}
}

// BalanceType discriminates the balance tagged union.
type BalanceType int

const (
	// BalanceTypeNative ...
	BalanceTypeNative BalanceType = iota
	// BalanceTypeNFT ...
	BalanceTypeNFT
	// BalanceTypeUnique ...
	BalanceTypeUnique
)

// VerificationStatus is the per-entry state of the destination address
// verification machine.
type VerificationStatus int

const (
	// VerificationPending ...
	VerificationPending VerificationStatus = iota
	// VerificationVerifying ...
	VerificationVerifying
	// VerificationVerified ...
	VerificationVerified
	// VerificationFailed ...
	VerificationFailed
)

func (s VerificationStatus) String() string {
	switch s {
	case VerificationVerifying:
		return "verifying"
	case VerificationVerified:
		return "verified"
	case VerificationFailed:
		return "failed"
	default:
		return "pending"
	}
}

// PendingActionType enumerates the blocking conditions that must be
// cleared before an account can be migrated cleanly.
type PendingActionType int

const (
	// ActionUnstake ...
	ActionUnstake PendingActionType = iota
	// ActionWithdraw ...
	ActionWithdraw
	// ActionIdentity ...
	ActionIdentity
	// ActionAccountIndex ...
	ActionAccountIndex
	// ActionProxy ...
	ActionProxy
	// ActionMultisigCall ...
	ActionMultisigCall
	// ActionMultisigTransfer ...
	ActionMultisigTransfer
	// ActionGovernance ...
	ActionGovernance
)
