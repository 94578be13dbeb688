package application

import "errors"

var (
	// ErrVerificationEntryNotFound ...
	ErrVerificationEntryNotFound = errors.New("verification entry not found")
	// ErrVerificationInProgress is thrown when a migration would start while
	// a verification batch is still running
	ErrVerificationInProgress = errors.New("address verification is still in progress")
	// ErrNoEligibleAccounts ...
	ErrNoEligibleAccounts = errors.New("no selected accounts are eligible for migration")
	// ErrDialogClosed is thrown when a fee estimation is requested while the
	// transaction dialog is closed
	ErrDialogClosed = errors.New("fee estimation requires an open transaction dialog")
	// ErrTransactionInProgress ...
	ErrTransactionInProgress = errors.New("a transaction is already running")
	// ErrUnknownApp ...
	ErrUnknownApp = errors.New("app is not part of the configured registry")
	// ErrDeviceNotReady is thrown when synchronization is requested while the
	// device is not connected or the migration app is not open
	ErrDeviceNotReady = errors.New("device is not connected or the app is not open")
)
