package domain

import (
	"github.com/shopspring/decimal"

	"github.com/Zondax/polkadot-web-migration-sub005/pkg/interpreter"
)

// AccountBase carries the fields shared by plain and multisig accounts.
type AccountBase struct {
	Address      string
	Path         string // empty for pure multisig accounts
	PubKey       string
	Balances     []Balance
	Registration *Registration
	AccountIndex string
	Proxies      []Proxy
	Selected bool

	// Destination is the consolidated-app address the account migrates
	// to, with the derivation path it was computed from.
	Destination     string
	DestinationPath string

	Error *interpreter.InternalError
}

// Account is a plain device-controlled account.
type Account struct {
	AccountBase
}

// MultisigAccount is an M-of-N account composed of member accounts. The
// variant is decided at construction time, never by field sniffing.
type MultisigAccount struct {
	AccountBase
	Threshold    *uint32
	Members      []MultisigMember
	PendingCalls []PendingCall
}

// MultisigMember is one signatory of a multisig account. Internal members
// are controlled by the connected device and carry their own path.
type MultisigMember struct {
	Address  string
	Internal bool
	Path     string
}

// PendingCall is a partially-approved multisig call recovered from chain
// storage.
type PendingCall struct {
	CallHash  string
	Depositor string
	Deposit   decimal.Decimal
	Approvals []string
	Height    uint64
	Index     uint32
}

// IsMultisig reports whether the account actually carries multisig data:
// a defined threshold or a non-empty member list. A zero threshold still
// counts; upstream indexer data occasionally reports it and it is
// preserved as-is.
func (m *MultisigAccount) IsMultisig() bool {
	return m.Threshold != nil || len(m.Members) > 0
}

// InternalMembers returns the members controlled by the connected device.
func (m *MultisigAccount) InternalMembers() []MultisigMember {
	var members []MultisigMember
	for _, member := range m.Members {
		if member.Internal {
			members = append(members, member)
		}
	}
	return members
}

// Registration is an on-chain identity attached to an account.
type Registration struct {
	Display   string
	Legal     string
	Web       string
	Email     string
	Twitter   string
	Deposit   decimal.Decimal
	CanRemove bool
}

// HasDisplayableItem returns whether the identity carries at least one
// non-empty field worth showing.
func (r *Registration) HasDisplayableItem() bool {
	if r == nil {
		return false
	}
	for _, item := range []string{r.Display, r.Legal, r.Web, r.Email, r.Twitter} {
		if item != "" {
			return true
		}
	}
	return false
}

// Proxy is one proxy relationship delegated by the account.
type Proxy struct {
	Type     string
	Delegate string
	Delay    uint32
}
