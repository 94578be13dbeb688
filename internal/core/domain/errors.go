package domain

import "errors"

var (
	// ErrInvalidTransferable is thrown when a native balance declares a
	// transferable amount greater than its total
	ErrInvalidTransferable = errors.New("transferable amount exceeds total balance")
	// ErrInvalidReservedBreakdown is thrown when the reserved sub-deposits
	// sum to more than the total reserved amount
	ErrInvalidReservedBreakdown = errors.New("reserved breakdown exceeds total reserved balance")
	// ErrInvalidVerificationTransition is thrown when an entry would reach a
	// terminal status without passing through the verifying state
	ErrInvalidVerificationTransition = errors.New("invalid verification status transition")
	// ErrMigrationInProgress is thrown when a second migration item would be
	// set while one is already in flight
	ErrMigrationInProgress = errors.New("a migration is already in progress")
	// ErrNoMigrationInProgress ...
	ErrNoMigrationInProgress = errors.New("no migration is in progress")
)
