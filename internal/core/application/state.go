package application

import (
	"sync"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/interpreter"
)

// State is the single source of truth shared by the synchronization
// service, the verification machine and the migration orchestrator. All
// mutation goes through its typed setters; readers get copies and must
// not write through them.
type State struct {
	mtx sync.RWMutex

	apps         []*domain.App
	verification map[domain.AppID][]domain.VerificationEntry
	isVerifying  bool
	migrating    *domain.MigrationItem
	result       domain.MigrationResult
	device       ports.DeviceInfo
}

// NewState returns an empty store.
func NewState() *State {
	return &State{verification: map[domain.AppID][]domain.VerificationEntry{}}
}

// SetApps replaces the whole app list.
func (s *State) SetApps(apps []domain.App) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.apps = make([]*domain.App, 0, len(apps))
	for i := range apps {
		app := apps[i]
		s.apps = append(s.apps, &app)
	}
}

// SetAppStatus updates the sync status of one app.
func (s *State) SetAppStatus(id domain.AppID, status domain.SyncStatus) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if app := s.findApp(id); app != nil {
		app.Status = status
		if status != domain.SyncStatusError {
			app.Error = nil
		}
	}
}

// SetAppError marks an app as failed to synchronize.
func (s *State) SetAppError(id domain.AppID, appErr *interpreter.InternalError) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if app := s.findApp(id); app != nil {
		app.Status = domain.SyncStatusError
		app.Error = appErr
	}
}

// SetAppAccounts stores the accounts discovered for an app and marks it
// synchronized.
func (s *State) SetAppAccounts(
	id domain.AppID, accounts []domain.Account, multisigs []domain.MultisigAccount,
) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if app := s.findApp(id); app != nil {
		app.Accounts = accounts
		app.MultisigAccounts = multisigs
		app.Status = domain.SyncStatusSynchronized
		app.Error = nil
	}
}

// SetAccountSelected toggles the selection flag of one account.
func (s *State) SetAccountSelected(id domain.AppID, address string, selected bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	app := s.findApp(id)
	if app == nil {
		return
	}
	for i := range app.Accounts {
		if app.Accounts[i].Address == address {
			app.Accounts[i].Selected = selected
		}
	}
	for i := range app.MultisigAccounts {
		if app.MultisigAccounts[i].Address == address {
			app.MultisigAccounts[i].Selected = selected
		}
	}
}

// SetAccountError records a migration failure against one account without
// touching the rest of the app.
func (s *State) SetAccountError(id domain.AppID, address string, accErr *interpreter.InternalError) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	app := s.findApp(id)
	if app == nil {
		return
	}
	for i := range app.Accounts {
		if app.Accounts[i].Address == address {
			app.Accounts[i].Error = accErr
		}
	}
	for i := range app.MultisigAccounts {
		if app.MultisigAccounts[i].Address == address {
			app.MultisigAccounts[i].Error = accErr
		}
	}
}

// SetDeviceInfo records the device connection state.
func (s *State) SetDeviceInfo(info ports.DeviceInfo) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.device = info
}

// DeviceInfo returns the last recorded device connection state.
func (s *State) DeviceInfo() ports.DeviceInfo {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.device
}

// Apps returns a snapshot of every app.
func (s *State) Apps() []domain.App {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	apps := make([]domain.App, 0, len(s.apps))
	for _, app := range s.apps {
		apps = append(apps, *app)
	}
	return apps
}

// App returns a snapshot of one app.
func (s *State) App(id domain.AppID) (domain.App, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if app := s.findApp(id); app != nil {
		return *app, true
	}
	return domain.App{}, false
}

// FilterValidSyncedAppsWithBalances returns the apps eligible for
// migration: synchronized without error and holding at least one
// balance-bearing account.
func (s *State) FilterValidSyncedAppsWithBalances() []domain.App {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	eligible := make([]domain.App, 0)
	for _, app := range s.apps {
		if app.Status != domain.SyncStatusSynchronized || app.Error != nil {
			continue
		}
		if !app.HasBalances() {
			continue
		}
		eligible = append(eligible, *app)
	}
	return eligible
}

// FilterSelectedAccountsForMigration narrows an eligible app down to its
// selected accounts.
func FilterSelectedAccountsForMigration(app domain.App) ([]domain.Account, []domain.MultisigAccount) {
	var accounts []domain.Account
	for _, account := range app.Accounts {
		if account.Selected {
			accounts = append(accounts, account)
		}
	}
	var multisigs []domain.MultisigAccount
	for _, multisig := range app.MultisigAccounts {
		if multisig.Selected {
			multisigs = append(multisigs, multisig)
		}
	}
	return accounts, multisigs
}

// DestinationAddressesByApp projects, for each eligible app, the union of
// destination addresses attached to its selected accounts, de-duplicated
// by address.
func (s *State) DestinationAddressesByApp() map[domain.AppID][]string {
	byApp := map[domain.AppID][]string{}
	for _, app := range s.FilterValidSyncedAppsWithBalances() {
		accounts, multisigs := FilterSelectedAccountsForMigration(app)

		seen := map[string]bool{}
		destinations := make([]string, 0)
		appendDest := func(dest string) {
			if dest != "" && !seen[dest] {
				seen[dest] = true
				destinations = append(destinations, dest)
			}
		}
		for _, account := range accounts {
			appendDest(account.Destination)
		}
		for _, multisig := range multisigs {
			appendDest(multisig.Destination)
		}
		if len(destinations) > 0 {
			byApp[app.ID] = destinations
		}
	}
	return byApp
}

func (s *State) findApp(id domain.AppID) *domain.App {
	for _, app := range s.apps {
		if app.ID == id {
			return app
		}
	}
	return nil
}
