package domain

// PendingAction is one blocking condition derived from an account's state.
// Disabled actions carry a tooltip explaining why they cannot be executed
// yet. Actions are recomputed from the account on every read, never stored.
type PendingAction struct {
	Type     PendingActionType
	Label    string
	Tooltip  string
	Disabled bool
}

// HasPendingActions gates clean migration eligibility.
func HasPendingActions(actions []PendingAction) bool {
	return len(actions) > 0
}

// PendingActions derives the blocking actions of a plain account.
func (a *Account) PendingActions(appID AppID) []PendingAction {
	return pendingActions(&a.AccountBase, appID, false, nil)
}

// PendingActions derives the blocking actions of a multisig account,
// including its pending calls.
func (m *MultisigAccount) PendingActions(appID AppID) []PendingAction {
	return pendingActions(&m.AccountBase, appID, true, m.PendingCalls)
}

// pendingActions evaluates every category independently, in a fixed order.
func pendingActions(
	base *AccountBase, appID AppID, isMultisig bool, calls []PendingCall,
) []PendingAction {
	actions := make([]PendingAction, 0)
	native := base.NativeBalance()

	if native != nil && native.Staking != nil && native.Staking.Total.IsPositive() {
		action := PendingAction{
			Type:    ActionUnstake,
			Label:   "Unstake",
			Tooltip: "Unstake the bonded balance before migrating",
		}
		if !native.Staking.CanUnstake {
			action.Disabled = true
			action.Tooltip = "Only the controller address can unstake this balance"
		}
		actions = append(actions, action)
	}

	if native != nil && native.Staking != nil {
		for _, chunk := range native.Staking.Unlocking {
			if chunk.CanWithdraw {
				actions = append(actions, PendingAction{
					Type:    ActionWithdraw,
					Label:   "Withdraw",
					Tooltip: "Withdraw the unbonded balance",
				})
				break
			}
		}
	}

	if base.Registration.HasDisplayableItem() {
		action := PendingAction{
			Type:    ActionIdentity,
			Label:   "Remove Identity",
			Tooltip: "Remove the on-chain identity to release its deposit",
		}
		if !base.Registration.CanRemove {
			action.Disabled = true
			action.Tooltip = "This identity is linked to a parent or sub-identity and must be removed from the parent account"
		}
		actions = append(actions, action)
	}

	if base.AccountIndex != "" {
		actions = append(actions, PendingAction{
			Type:    ActionAccountIndex,
			Label:   "Remove Account Index",
			Tooltip: "Remove the on-chain account index to release its deposit",
		})
	}

	if len(base.Proxies) > 0 {
		actions = append(actions, PendingAction{
			Type:    ActionProxy,
			Label:   "Remove Proxy",
			Tooltip: "Remove the proxy relationships before migrating",
		})
	}

	if isMultisig && len(calls) > 0 {
		actions = append(actions, PendingAction{
			Type:    ActionMultisigCall,
			Label:   "Review Multisig Call",
			Tooltip: "Approve or cancel the pending multisig calls",
		})
	}

	if isMultisig && native != nil && native.Transferable.IsPositive() {
		actions = append(actions, PendingAction{
			Type:    ActionMultisigTransfer,
			Label:   "Multisig Transfer",
			Tooltip: "Funds held by a multisig account must be moved with a multisig call",
		})
	}

	if governance := governanceAction(native); governance != nil {
		actions = append(actions, *governance)
	}

	return actions
}

// governanceAction selects among unlock, delegation removal and vote
// removal. When several conditions hold at once the label follows the
// priority unlock > delegation > vote-removal.
func governanceAction(native *NativeBalance) *PendingAction {
	if native == nil || native.ConvictionVoting == nil {
		return nil
	}
	voting := native.ConvictionVoting

	removableVote := false
	for _, vote := range voting.Votes {
		if vote.Ongoing {
			removableVote = true
			break
		}
	}

	switch {
	case voting.Unlockable.IsPositive():
		return &PendingAction{
			Type:    ActionGovernance,
			Label:   "Gov Unlock",
			Tooltip: "Unlock the conviction-locked balance",
		}
	case len(voting.Delegations) > 0:
		return &PendingAction{
			Type:    ActionGovernance,
			Label:   "Remove Delegation",
			Tooltip: "Remove the active governance delegation",
		}
	case removableVote:
		return &PendingAction{
			Type:    ActionGovernance,
			Label:   "Remove Vote",
			Tooltip: "Remove the vote on the ongoing referendum",
		}
	default:
		return nil
	}
}

// NativeBalance returns the first native balance of the account, if any.
func (b *AccountBase) NativeBalance() *NativeBalance {
	for i := range b.Balances {
		if b.Balances[i].IsNative() {
			return b.Balances[i].Native
		}
	}
	return nil
}
