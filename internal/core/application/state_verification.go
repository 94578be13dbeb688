package application

import "github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"

// VerificationEntries returns a snapshot of the per-app verification map.
func (s *State) VerificationEntries() map[domain.AppID][]domain.VerificationEntry {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	snapshot := make(map[domain.AppID][]domain.VerificationEntry, len(s.verification))
	for id, entries := range s.verification {
		copied := make([]domain.VerificationEntry, len(entries))
		copy(copied, entries)
		snapshot[id] = copied
	}
	return snapshot
}

// ReplaceVerificationEntries swaps the entry list of one app, resetting
// any in-flight status.
func (s *State) ReplaceVerificationEntries(id domain.AppID, entries []domain.VerificationEntry) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	copied := make([]domain.VerificationEntry, len(entries))
	copy(copied, entries)
	s.verification[id] = copied
}

// RemoveVerificationEntries drops the entries of an app that no longer
// has eligible destination addresses.
func (s *State) RemoveVerificationEntries(id domain.AppID) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.verification, id)
}

// ClearVerification drops every entry and resets the batch flag.
func (s *State) ClearVerification() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.verification = map[domain.AppID][]domain.VerificationEntry{}
	s.isVerifying = false
}

// BeginVerification moves one entry into the Verifying state.
func (s *State) BeginVerification(id domain.AppID, address string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	entry := s.findEntry(id, address)
	if entry == nil {
		return ErrVerificationEntryNotFound
	}
	return entry.Begin()
}

// CompleteVerification records the device's confirmation for one entry.
func (s *State) CompleteVerification(id domain.AppID, address string, confirmed bool) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	entry := s.findEntry(id, address)
	if entry == nil {
		return ErrVerificationEntryNotFound
	}
	return entry.Complete(confirmed)
}

// SetVerifying raises or clears the global batch flag the orchestrator
// waits on before starting a migration.
func (s *State) SetVerifying(verifying bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.isVerifying = verifying
}

// IsVerifying reports whether a verification batch is running.
func (s *State) IsVerifying() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.isVerifying
}

func (s *State) findEntry(id domain.AppID, address string) *domain.VerificationEntry {
	entries := s.verification[id]
	for i := range entries {
		if entries[i].Address == address {
			return &entries[i]
		}
	}
	return nil
}
