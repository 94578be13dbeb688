package application_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/application"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/interpreter"
)

func fundedAccount(address, path, destination string) domain.Account {
	return domain.Account{
		AccountBase: domain.AccountBase{
			Address:  address,
			Path:     path,
			Selected: true,
			Balances: []domain.Balance{domain.NewNativeBalance(&domain.NativeBalance{
				Free:         decimal.NewFromInt(1000),
				Total:        decimal.NewFromInt(1000),
				Transferable: decimal.NewFromInt(1000),
			})},
			Destination:     destination,
			DestinationPath: "m/44'/354'/0'/0'/0'",
		},
	}
}

func newTestState(apps ...domain.App) *application.State {
	state := application.NewState()
	state.SetApps(apps)
	return state
}

func syncedApp(id domain.AppID, prefix uint16, accounts ...domain.Account) domain.App {
	return domain.App{
		ID:         id,
		Name:       string(id),
		SS58Prefix: prefix,
		CoinType:   354,
		Status:     domain.SyncStatusSynchronized,
		Accounts:   accounts,
	}
}

func TestFilterValidSyncedAppsWithBalances(t *testing.T) {
	funded := syncedApp("polkadot", 0, fundedAccount("addr1", "m/44'/354'/0'/0'/0'", "dest1"))
	empty := syncedApp("kusama", 2)
	failed := syncedApp("astar", 5, fundedAccount("addr2", "m/44'/810'/0'/0'/0'", "dest2"))
	failed.Status = domain.SyncStatusError
	failed.Error = interpreter.New(interpreter.KindSyncError, "syncApp")
	loading := syncedApp("acala", 10, fundedAccount("addr3", "m/44'/787'/0'/0'/0'", "dest3"))
	loading.Status = domain.SyncStatusLoading

	state := newTestState(funded, empty, failed, loading)

	eligible := state.FilterValidSyncedAppsWithBalances()
	require.Len(t, eligible, 1)
	assert.Equal(t, domain.AppID("polkadot"), eligible[0].ID)
}

func TestFilterSelectedAccountsForMigration(t *testing.T) {
	selected := fundedAccount("addr1", "m/44'/354'/0'/0'/0'", "dest1")
	unselected := fundedAccount("addr2", "m/44'/354'/1'/0'/0'", "dest2")
	unselected.Selected = false

	app := syncedApp("polkadot", 0, selected, unselected)
	accounts, multisigs := application.FilterSelectedAccountsForMigration(app)

	require.Len(t, accounts, 1)
	assert.Equal(t, "addr1", accounts[0].Address)
	assert.Empty(t, multisigs)
}

func TestSetAccountSelected(t *testing.T) {
	state := newTestState(syncedApp("polkadot", 0, fundedAccount("addr1", "m/44'/354'/0'/0'/0'", "dest1")))

	state.SetAccountSelected("polkadot", "addr1", false)

	app, ok := state.App("polkadot")
	require.True(t, ok)
	assert.False(t, app.Accounts[0].Selected)
}

func TestDestinationAddressesDeduplicated(t *testing.T) {
	first := fundedAccount("addr1", "m/44'/354'/0'/0'/0'", "shared-dest")
	second := fundedAccount("addr2", "m/44'/354'/1'/0'/0'", "shared-dest")
	third := fundedAccount("addr3", "m/44'/354'/2'/0'/0'", "other-dest")

	state := newTestState(syncedApp("polkadot", 0, first, second, third))

	byApp := state.DestinationAddressesByApp()
	require.Contains(t, byApp, domain.AppID("polkadot"))
	assert.Equal(t, []string{"shared-dest", "other-dest"}, byApp["polkadot"])
}

func TestSetAccountErrorIsScopedToOneAccount(t *testing.T) {
	state := newTestState(syncedApp("polkadot", 0,
		fundedAccount("addr1", "m/44'/354'/0'/0'/0'", "dest1"),
		fundedAccount("addr2", "m/44'/354'/1'/0'/0'", "dest2"),
	))

	state.SetAccountError("polkadot", "addr1", interpreter.New(interpreter.KindMigrationError, "migrateAccount"))

	app, _ := state.App("polkadot")
	require.NotNil(t, app.Accounts[0].Error)
	assert.Nil(t, app.Accounts[1].Error)
	assert.Nil(t, app.Error)
}

func TestMigrationItemAtMostOne(t *testing.T) {
	state := application.NewState()

	item := domain.MigrationItem{ID: "one", AppID: "polkadot", Address: "addr1"}
	require.NoError(t, state.StartMigration(item))

	err := state.StartMigration(domain.MigrationItem{ID: "two"})
	require.ErrorIs(t, err, domain.ErrMigrationInProgress)

	current, ok := state.Migrating()
	require.True(t, ok)
	assert.Equal(t, "one", current.ID)

	require.NoError(t, state.FinishMigration(true))
	_, ok = state.Migrating()
	assert.False(t, ok)

	require.ErrorIs(t, state.FinishMigration(true), domain.ErrNoMigrationInProgress)
}

func TestMigrationResultCountsEveryAttempt(t *testing.T) {
	state := application.NewState()

	require.NoError(t, state.StartMigration(domain.MigrationItem{ID: "a"}))
	require.NoError(t, state.FinishMigration(true))
	require.NoError(t, state.StartMigration(domain.MigrationItem{ID: "b"}))
	require.NoError(t, state.FinishMigration(false))

	result := state.Result()
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Success)

	state.ResetResult()
	assert.Equal(t, domain.MigrationResult{}, state.Result())
}
