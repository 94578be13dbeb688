package interpreter

// Kind is the closed set of internal error kinds the orchestration layer
// branches on. Raw device or chain error codes never leave this package.
type Kind int

const (
	// KindUnknown is the fallback for every unmapped low-level error.
	KindUnknown Kind = iota
	// KindAppNotOpen ...
	KindAppNotOpen
	// KindLockedDevice ...
	KindLockedDevice
	// KindDeviceBusy is returned when a device operation is attempted while
	// another one is in flight.
	KindDeviceBusy
	// KindDisconnected ...
	KindDisconnected
	// KindTransactionRejected ...
	KindTransactionRejected
	// KindConnectionTimeout ...
	KindConnectionTimeout
	// KindInsufficientBalance ...
	KindInsufficientBalance
	// KindMigrationError ...
	KindMigrationError
	// KindSyncError ...
	KindSyncError
	// KindBadRequest covers malformed payloads rejected by the device.
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindAppNotOpen:
		return "APP_NOT_OPEN"
	case KindLockedDevice:
		return "LOCKED_DEVICE"
	case KindDeviceBusy:
		return "DEVICE_BUSY"
	case KindDisconnected:
		return "DEVICE_DISCONNECTED"
	case KindTransactionRejected:
		return "TRANSACTION_REJECTED"
	case KindConnectionTimeout:
		return "CONNECTION_TIMEOUT"
	case KindInsufficientBalance:
		return "INSUFFICIENT_BALANCE"
	case KindMigrationError:
		return "MIGRATION_ERROR"
	case KindSyncError:
		return "SYNC_ERROR"
	case KindBadRequest:
		return "BAD_REQUEST"
	default:
		return "UNKNOWN_ERROR"
	}
}

// details is the fixed user-facing content per kind. Titles and
// descriptions never carry device identifiers or protocol bytes.
var details = map[Kind]struct{ title, description string }{
	KindUnknown: {
		"Unknown Error",
		"An unexpected error occurred. Please try again.",
	},
	KindAppNotOpen: {
		"App Not Open",
		"Open the required app on your device and try again.",
	},
	KindLockedDevice: {
		"Device Locked",
		"Unlock your device to continue.",
	},
	KindDeviceBusy: {
		"Device Busy",
		"Another device operation is in progress. Wait for it to finish and try again.",
	},
	KindDisconnected: {
		"Device Disconnected",
		"The device was disconnected. Reconnect it and restart the operation.",
	},
	KindTransactionRejected: {
		"Transaction Rejected",
		"The transaction was rejected on the device.",
	},
	KindConnectionTimeout: {
		"Connection Timeout",
		"The device did not respond in time. Check the connection and try again.",
	},
	KindInsufficientBalance: {
		"Insufficient Balance",
		"The account balance does not cover the transaction fee.",
	},
	KindMigrationError: {
		"Migration Failed",
		"The account could not be migrated. Remaining accounts will still be processed.",
	},
	KindSyncError: {
		"Synchronization Failed",
		"Account data could not be synchronized for this network.",
	},
	KindBadRequest: {
		"Invalid Request",
		"The device rejected the request payload.",
	},
}
