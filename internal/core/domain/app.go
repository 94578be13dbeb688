package domain

import "github.com/Zondax/polkadot-web-migration-sub005/pkg/interpreter"

// AppID identifies one legacy per-chain app.
type AppID string

// App is one legacy chain app with the accounts discovered for it. Apps
// share the device's key material and derivation scheme; they differ in
// SS58 prefix, coin type and on-chain semantics.
type App struct {
	ID               AppID
	Name             string
	SS58Prefix       uint16
	CoinType         uint32
	Status           SyncStatus
	Error            *interpreter.InternalError
	Accounts         []Account
	MultisigAccounts []MultisigAccount
}

// HasBalances returns whether any account of the app carries at least one
// balance entry.
func (a *App) HasBalances() bool {
	for i := range a.Accounts {
		if len(a.Accounts[i].Balances) > 0 {
			return true
		}
	}
	for i := range a.MultisigAccounts {
		if len(a.MultisigAccounts[i].Balances) > 0 {
			return true
		}
	}
	return false
}

// DefaultApps is the registry of supported legacy apps. The consolidated
// destination app reuses the Polkadot coin type for every chain.
func DefaultApps() []App {
	return []App{
		{ID: "polkadot", Name: "Polkadot", SS58Prefix: 0, CoinType: 354},
		{ID: "kusama", Name: "Kusama", SS58Prefix: 2, CoinType: 434},
		{ID: "astar", Name: "Astar", SS58Prefix: 5, CoinType: 810},
		{ID: "acala", Name: "Acala", SS58Prefix: 10, CoinType: 787},
		{ID: "karura", Name: "Karura", SS58Prefix: 8, CoinType: 686},
		{ID: "bifrost", Name: "Bifrost", SS58Prefix: 6, CoinType: 788},
		{ID: "centrifuge", Name: "Centrifuge", SS58Prefix: 36, CoinType: 747},
		{ID: "edgeware", Name: "Edgeware", SS58Prefix: 7, CoinType: 523},
		{ID: "statemint", Name: "Polkadot Asset Hub", SS58Prefix: 0, CoinType: 354},
		{ID: "statemine", Name: "Kusama Asset Hub", SS58Prefix: 2, CoinType: 434},
	}
}
