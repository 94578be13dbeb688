package device

import (
	"context"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/ss58"
)

// Simulated is an in-memory stand-in for the hardware device. Keys are
// derived deterministically from the seed so repeated runs produce the
// same addresses, and confirmation prompts auto-approve.
type Simulated struct {
	seed []byte

	mtx       sync.Mutex
	callbacks []func(error)
}

// NewSimulated ...
func NewSimulated(seed string) *Simulated {
	return &Simulated{seed: []byte(seed)}
}

func (s *Simulated) Connect(ctx context.Context) (ports.DeviceInfo, error) {
	return ports.DeviceInfo{Connected: true, AppOpen: true}, nil
}

func (s *Simulated) GetAddress(
	ctx context.Context, path string, prefix uint16,
) (ports.DeviceAddress, error) {
	pubKey := s.publicKey(path)
	address, err := ss58.Encode(pubKey, prefix)
	if err != nil {
		return ports.DeviceAddress{}, err
	}
	return ports.DeviceAddress{Address: address, PubKey: pubKey}, nil
}

func (s *Simulated) VerifyAddress(
	ctx context.Context, path string, prefix uint16,
) (bool, error) {
	if _, err := s.GetAddress(ctx, path, prefix); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Simulated) Sign(
	ctx context.Context, path string, payload []byte,
) ([]byte, error) {
	hash, err := blake2b.New512(s.publicKey(path))
	if err != nil {
		return nil, err
	}
	hash.Write(payload)
	return hash.Sum(nil), nil
}

func (s *Simulated) OnDisconnect(fn func(error)) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.callbacks = append(s.callbacks, fn)
}

// Drop simulates an unplugged transport and notifies the observers.
func (s *Simulated) Drop(err error) {
	s.mtx.Lock()
	callbacks := make([]func(error), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mtx.Unlock()

	for _, fn := range callbacks {
		fn(err)
	}
}

func (s *Simulated) Close() error {
	return nil
}

func (s *Simulated) publicKey(path string) []byte {
	material := make([]byte, 0, len(s.seed)+len(path))
	material = append(material, s.seed...)
	material = append(material, path...)
	sum := blake2b.Sum256(material)
	return sum[:]
}
