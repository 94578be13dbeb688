package domain

// VerificationEntry tracks one destination address through the device
// verification machine: Pending -> Verifying -> {Verified, Failed}.
// Failed entries may be re-submitted.
type VerificationEntry struct {
	Address string
	Path    string
	Status  VerificationStatus
}

// NewVerificationEntry returns an entry in the Pending state.
func NewVerificationEntry(address, path string) VerificationEntry {
	return VerificationEntry{Address: address, Path: path, Status: VerificationPending}
}

// Begin moves the entry into the Verifying state. Only Pending and Failed
// entries can begin a verification.
func (e *VerificationEntry) Begin() error {
	if e.Status != VerificationPending && e.Status != VerificationFailed {
		return ErrInvalidVerificationTransition
	}
	e.Status = VerificationVerifying
	return nil
}

// Complete records the device's confirmation. The entry must be Verifying:
// a terminal status is never reached without passing through Verifying.
func (e *VerificationEntry) Complete(confirmed bool) error {
	if e.Status != VerificationVerifying {
		return ErrInvalidVerificationTransition
	}
	if confirmed {
		e.Status = VerificationVerified
	} else {
		e.Status = VerificationFailed
	}
	return nil
}
