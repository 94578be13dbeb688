package application

import "github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"

// StartMigration sets the currently-executing migration item. At most one
// item may be in flight at any instant; a second caller is rejected.
func (s *State) StartMigration(item domain.MigrationItem) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.migrating != nil {
		return domain.ErrMigrationInProgress
	}
	s.migrating = &item
	return nil
}

// FinishMigration clears the in-flight item and updates the aggregate
// counters. Every completed attempt increments Total; only successful
// ones increment Success.
func (s *State) FinishMigration(success bool) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.migrating == nil {
		return domain.ErrNoMigrationInProgress
	}
	s.migrating = nil
	s.result.Total++
	if success {
		s.result.Success++
	}
	return nil
}

// Migrating returns a copy of the in-flight migration item, if any.
func (s *State) Migrating() (domain.MigrationItem, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.migrating == nil {
		return domain.MigrationItem{}, false
	}
	return *s.migrating, true
}

// Result returns the aggregate migration outcome.
func (s *State) Result() domain.MigrationResult {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.result
}

// ResetResult zeroes the aggregate counters before a new batch.
func (s *State) ResetResult() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.result = domain.MigrationResult{}
}
