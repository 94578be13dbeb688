package ports

import "context"

// DeviceInfo is the connection state reported by the device after a
// connect attempt.
type DeviceInfo struct {
	Connected bool
	AppOpen   bool
}

// DeviceAddress is the device's response to an address derivation.
type DeviceAddress struct {
	Address string
	PubKey  []byte
}

// Device is the protocol-level interface to the hardware signing device.
// The device is single-threaded: implementations are expected to reject a
// second in-flight operation rather than queue it.
type Device interface {
	// Connect establishes the session and reports whether the migration
	// app is open on the device.
	Connect(ctx context.Context) (DeviceInfo, error)

	// GetAddress derives the public key at path and encodes it for the
	// given SS58 prefix.
	GetAddress(ctx context.Context, path string, prefix uint16) (DeviceAddress, error)

	// VerifyAddress shows the address on the device screen and returns the
	// user's confirmation.
	VerifyAddress(ctx context.Context, path string, prefix uint16) (bool, error)

	// Sign asks the device to sign the payload with the key at path.
	Sign(ctx context.Context, path string, payload []byte) ([]byte, error)

	// OnDisconnect registers a callback invoked when the transport drops.
	OnDisconnect(fn func(error))

	Close() error
}
