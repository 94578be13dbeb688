package application

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/interpreter"
)

// VerificationService drives destination addresses through the device
// verification machine. Device calls are strictly sequential: the device
// protocol has no multiplexing, so one (app, address) pair is verified at
// a time.
type VerificationService struct {
	state  *State
	device ports.Device
}

// NewVerificationService ...
func NewVerificationService(state *State, device ports.Device) *VerificationService {
	return &VerificationService{state: state, device: device}
}

// Reconcile refreshes the per-app entry map from the current
// selected-accounts set. Apps no longer holding eligible destination
// addresses lose their entries; an app's entries are replaced only when
// its address count changed, so in-flight statuses survive unrelated
// selection changes.
func (v *VerificationService) Reconcile() {
	current := v.computeEntries()
	existing := v.state.VerificationEntries()

	for id := range existing {
		if _, ok := current[id]; !ok {
			v.state.RemoveVerificationEntries(id)
		}
	}
	for id, entries := range current {
		if len(existing[id]) != len(entries) {
			v.state.ReplaceVerificationEntries(id, entries)
		}
	}
}

// VerifyAll verifies every entry across every app.
func (v *VerificationService) VerifyAll(ctx context.Context) error {
	return v.verify(ctx, func(domain.AppID, domain.VerificationEntry) bool {
		return true
	})
}

// VerifySelected verifies only the entries of currently
// migration-eligible apps.
func (v *VerificationService) VerifySelected(ctx context.Context) error {
	eligible := map[domain.AppID]bool{}
	for _, app := range v.state.FilterValidSyncedAppsWithBalances() {
		eligible[app.ID] = true
	}
	return v.verify(ctx, func(id domain.AppID, _ domain.VerificationEntry) bool {
		return eligible[id]
	})
}

// VerifyFailed re-submits only the entries that failed a previous pass.
func (v *VerificationService) VerifyFailed(ctx context.Context) error {
	return v.verify(ctx, func(_ domain.AppID, entry domain.VerificationEntry) bool {
		return entry.Status == domain.VerificationFailed
	})
}

// verify runs one sequential batch over the entries admitted by include.
// The global verifying flag stays up for the whole batch; the migration
// orchestrator waits on it.
func (v *VerificationService) verify(
	ctx context.Context, include func(domain.AppID, domain.VerificationEntry) bool,
) error {
	v.state.SetVerifying(true)
	defer v.state.SetVerifying(false)

	snapshot := v.state.VerificationEntries()
	ids := make([]domain.AppID, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		app, ok := v.state.App(id)
		if !ok {
			continue
		}
		for _, entry := range snapshot[id] {
			if !include(id, entry) {
				continue
			}
			if err := v.verifyEntry(ctx, app, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// verifyEntry runs one device confirmation. A failed confirmation marks
// the entry Failed and the batch continues; only a device-level error
// aborts the batch.
func (v *VerificationService) verifyEntry(
	ctx context.Context, app domain.App, entry domain.VerificationEntry,
) error {
	if err := v.state.BeginVerification(app.ID, entry.Address); err != nil {
		return err
	}

	confirmed, err := v.device.VerifyAddress(ctx, entry.Path, app.SS58Prefix)
	if err != nil {
		internal := interpreter.Interpret(err, "verifyAddress")
		log.WithError(internal).WithFields(log.Fields{
			"app":     app.ID,
			"address": entry.Address,
		}).Warn("address verification errored")

		if completeErr := v.state.CompleteVerification(app.ID, entry.Address, false); completeErr != nil {
			return completeErr
		}
		// A rejection on the device is recoverable per entry; transport
		// level failures abort the batch.
		switch internal.Kind {
		case interpreter.KindDisconnected, interpreter.KindConnectionTimeout, interpreter.KindDeviceBusy:
			return internal
		}
		return nil
	}

	return v.state.CompleteVerification(app.ID, entry.Address, confirmed)
}

// computeEntries derives the destination entries of every eligible app
// from its selected accounts, de-duplicated by address.
func (v *VerificationService) computeEntries() map[domain.AppID][]domain.VerificationEntry {
	current := map[domain.AppID][]domain.VerificationEntry{}
	for _, app := range v.state.FilterValidSyncedAppsWithBalances() {
		accounts, multisigs := FilterSelectedAccountsForMigration(app)

		seen := map[string]bool{}
		var entries []domain.VerificationEntry
		add := func(address, path string) {
			if address == "" || seen[address] {
				return
			}
			seen[address] = true
			entries = append(entries, domain.NewVerificationEntry(address, path))
		}
		for _, account := range accounts {
			add(account.Destination, account.DestinationPath)
		}
		for _, multisig := range multisigs {
			add(multisig.Destination, multisig.DestinationPath)
		}

		if len(entries) > 0 {
			current[app.ID] = entries
		}
	}
	return current
}
