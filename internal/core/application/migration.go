package application

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/interpreter"
)

// MigrationService runs migration transactions one account at a time.
// Device signing is strictly serialized and the service holds at most one
// in-flight MigrationItem; a failed account is recorded and the batch
// moves on to the next eligible account.
type MigrationService struct {
	state  *State
	device ports.Device
	chains map[domain.AppID]ports.ChainClient
	txctl  *TxStatusController
}

// NewMigrationService ...
func NewMigrationService(
	state *State,
	device ports.Device,
	chains map[domain.AppID]ports.ChainClient,
	txctl *TxStatusController,
) *MigrationService {
	return &MigrationService{state: state, device: device, chains: chains, txctl: txctl}
}

// MigrateSelected migrates every selected, clean account of every
// eligible app and returns the aggregate result. Total counts every
// attempt; Success only the completed ones. A device disconnect aborts
// the remaining batch.
func (m *MigrationService) MigrateSelected(ctx context.Context) (domain.MigrationResult, error) {
	if m.state.IsVerifying() {
		return m.state.Result(), ErrVerificationInProgress
	}
	if _, busy := m.state.Migrating(); busy {
		return m.state.Result(), domain.ErrMigrationInProgress
	}
	m.state.ResetResult()

	attempted := false
	for _, app := range m.state.FilterValidSyncedAppsWithBalances() {
		chain, ok := m.chains[app.ID]
		if !ok {
			log.WithField("app", app.ID).Warn("skipping app without chain client")
			continue
		}

		accounts, _ := FilterSelectedAccountsForMigration(app)
		for _, account := range accounts {
			if !m.isCleanlyMigratable(app, account) {
				continue
			}
			attempted = true

			if err := m.migrateOne(ctx, app, chain, account); err != nil {
				internal := interpreter.Interpret(err, "migrateAccount")
				if internal.Kind == interpreter.KindDisconnected {
					return m.state.Result(), internal
				}
			}
		}
		// Multisig funds are not moved here: they require an approval
		// round from the other signatories, surfaced as a pending action.
	}

	if !attempted {
		return m.state.Result(), ErrNoEligibleAccounts
	}
	return m.state.Result(), nil
}

// migrateOne runs a single account migration under the at-most-one-item
// invariant, recording failures against the account.
func (m *MigrationService) migrateOne(
	ctx context.Context, app domain.App, chain ports.ChainClient, account domain.Account,
) error {
	item := domain.MigrationItem{
		ID:          uuid.New().String(),
		AppID:       app.ID,
		Address:     account.Address,
		Path:        account.Path,
		Destination: account.Destination,
	}
	if err := m.state.StartMigration(item); err != nil {
		return err
	}

	err := m.txctl.RunTransaction(ctx, func(ctx context.Context, update TxUpdate) error {
		return m.executeTransfer(ctx, chain, account, update)
	})

	if err != nil {
		internal := interpreter.Interpret(err, "migrateAccount").
			WithContext("app", string(app.ID)).
			WithContext("address", account.Address)
		m.state.SetAccountError(app.ID, account.Address, internal)
		log.WithError(internal).WithFields(log.Fields{
			"app":     app.ID,
			"address": account.Address,
		}).Warn("account migration failed")
	}

	if finishErr := m.state.FinishMigration(err == nil); finishErr != nil {
		return finishErr
	}
	return err
}

// executeTransfer builds, fee-checks, signs and submits the balance
// transfer moving the account's transferable amount to its destination.
func (m *MigrationService) executeTransfer(
	ctx context.Context, chain ports.ChainClient, account domain.Account, update TxUpdate,
) error {
	native := account.NativeBalance()
	if native == nil || !native.Transferable.IsPositive() {
		return interpreter.New(interpreter.KindInsufficientBalance, "executeTransfer")
	}

	draft, err := chain.BuildTransfer(ctx, ports.Transfer{
		Sender:      account.Address,
		Destination: account.Destination,
		Amount:      native.Transferable,
	})
	if err != nil {
		return err
	}

	fee, err := chain.EstimateFee(ctx, draft)
	if err != nil {
		return err
	}
	amount := native.Transferable.Sub(fee)
	if !amount.IsPositive() {
		return interpreter.New(interpreter.KindInsufficientBalance, "executeTransfer").
			WithContext("fee", fee.String())
	}

	payload, err := chain.BuildTransfer(ctx, ports.Transfer{
		Sender:      account.Address,
		Destination: account.Destination,
		Amount:      amount,
	})
	if err != nil {
		return err
	}

	signature, err := m.device.Sign(ctx, account.Path, payload)
	if err != nil {
		return err
	}

	txHash, err := chain.Submit(ctx, payload, signature)
	if err != nil {
		update(TxStatusFailed, "The transaction could not be broadcast.")
		return err
	}

	log.WithFields(log.Fields{
		"address": account.Address,
		"txHash":  txHash,
	}).Info("migration transaction submitted")
	update(TxStatusSuccess, "")
	return nil
}

// isCleanlyMigratable gates migration on the absence of pending actions
// and the presence of a verified-ready destination.
func (m *MigrationService) isCleanlyMigratable(app domain.App, account domain.Account) bool {
	if account.Destination == "" {
		return false
	}
	return !domain.HasPendingActions(account.PendingActions(app.ID))
}
