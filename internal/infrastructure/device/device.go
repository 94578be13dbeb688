// Package device wraps a raw device binding with the serialization the
// hardware requires: the signing device is single-threaded, so exactly
// one connect, verify or sign operation may be outstanding at a time.
package device

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/interpreter"
)

// SerializedDevice owns the underlying device handle behind a mutex with
// try-lock semantics: a concurrent operation is rejected with a
// device-busy error, never queued silently. A transport disconnect fails
// the in-flight operation and resets the connection state atomically.
type SerializedDevice struct {
	inner   ports.Device
	timeout time.Duration

	busy sync.Mutex

	stateMtx     sync.Mutex
	info         ports.DeviceInfo
	disconnected chan struct{}
	callbacks    []func(error)
}

// NewSerializedDevice wraps inner, bounding each operation by timeout.
func NewSerializedDevice(inner ports.Device, timeout time.Duration) *SerializedDevice {
	d := &SerializedDevice{
		inner:        inner,
		timeout:      timeout,
		disconnected: make(chan struct{}),
	}
	inner.OnDisconnect(d.handleDisconnect)
	return d
}

// Connect establishes the device session. Racing callers do not corrupt
// the connection state: only one connect proceeds, the rest are rejected
// busy.
func (d *SerializedDevice) Connect(ctx context.Context) (ports.DeviceInfo, error) {
	var info ports.DeviceInfo
	err := d.run(ctx, "connect", func(opCtx context.Context) error {
		var innerErr error
		info, innerErr = d.inner.Connect(opCtx)
		return innerErr
	})
	if err != nil {
		return ports.DeviceInfo{}, err
	}

	d.stateMtx.Lock()
	d.info = info
	if info.Connected {
		d.disconnected = make(chan struct{})
	}
	d.stateMtx.Unlock()
	return info, nil
}

// GetAddress derives the key at path, encoded for the given prefix.
func (d *SerializedDevice) GetAddress(
	ctx context.Context, path string, prefix uint16,
) (ports.DeviceAddress, error) {
	var address ports.DeviceAddress
	err := d.run(ctx, "getAddress", func(opCtx context.Context) error {
		var innerErr error
		address, innerErr = d.inner.GetAddress(opCtx, path, prefix)
		return innerErr
	})
	return address, err
}

// VerifyAddress shows the address on the device and waits for the user.
func (d *SerializedDevice) VerifyAddress(
	ctx context.Context, path string, prefix uint16,
) (bool, error) {
	var confirmed bool
	err := d.run(ctx, "verifyAddress", func(opCtx context.Context) error {
		var innerErr error
		confirmed, innerErr = d.inner.VerifyAddress(opCtx, path, prefix)
		return innerErr
	})
	return confirmed, err
}

// Sign asks the device to sign payload with the key at path.
func (d *SerializedDevice) Sign(ctx context.Context, path string, payload []byte) ([]byte, error) {
	var signature []byte
	err := d.run(ctx, "sign", func(opCtx context.Context) error {
		var innerErr error
		signature, innerErr = d.inner.Sign(opCtx, path, payload)
		return innerErr
	})
	return signature, err
}

// OnDisconnect registers an observer for transport drops.
func (d *SerializedDevice) OnDisconnect(fn func(error)) {
	d.stateMtx.Lock()
	defer d.stateMtx.Unlock()
	d.callbacks = append(d.callbacks, fn)
}

// Info returns the last known connection state.
func (d *SerializedDevice) Info() ports.DeviceInfo {
	d.stateMtx.Lock()
	defer d.stateMtx.Unlock()
	return d.info
}

// Close releases the underlying handle.
func (d *SerializedDevice) Close() error {
	return d.inner.Close()
}

// run executes one serialized device operation. There is no cooperative
// mid-operation cancellation: the call ends on completion, on the bounded
// timeout or on a transport disconnect.
func (d *SerializedDevice) run(ctx context.Context, operation string, fn func(context.Context) error) error {
	if !d.busy.TryLock() {
		return interpreter.New(interpreter.KindDeviceBusy, operation)
	}
	defer d.busy.Unlock()

	opCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	d.stateMtx.Lock()
	disconnected := d.disconnected
	d.stateMtx.Unlock()

	result := make(chan error, 1)
	go func() {
		result <- fn(opCtx)
	}()

	select {
	case err := <-result:
		if err != nil {
			return interpreter.Interpret(err, operation)
		}
		return nil
	case <-disconnected:
		return interpreter.New(interpreter.KindDisconnected, operation)
	case <-opCtx.Done():
		return interpreter.Interpret(opCtx.Err(), operation)
	}
}

// handleDisconnect fails the in-flight operation and resets the
// connection state before notifying observers.
func (d *SerializedDevice) handleDisconnect(cause error) {
	d.stateMtx.Lock()
	d.info = ports.DeviceInfo{}
	close(d.disconnected)
	d.disconnected = make(chan struct{})
	callbacks := append([]func(error){}, d.callbacks...)
	d.stateMtx.Unlock()

	log.WithError(cause).Warn("device disconnected")
	for _, fn := range callbacks {
		fn(cause)
	}
}
