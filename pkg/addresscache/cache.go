// Package addresscache holds the raw public keys returned by the device,
// keyed by derivation path. Addresses are re-encoded for the requested
// network prefix on every read, so one device round trip serves every
// network sharing the same derivation.
package addresscache

import (
	"encoding/hex"
	"errors"
	"sync"

	"github.com/Zondax/polkadot-web-migration-sub005/pkg/ss58"
)

// ErrInvalidPubKey ...
var ErrInvalidPubKey = errors.New("cached public key must be 32 bytes")

// AddressInfo is the network-specific view of a cached key.
type AddressInfo struct {
	Address   string
	PubKeyHex string
	Path      string
}

// Cache is a session-scoped map of raw public keys by derivation path.
// It never stores a network-specific address.
type Cache struct {
	mtx  sync.RWMutex
	keys map[string][]byte
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{keys: map[string][]byte{}}
}

// Has returns whether a key is cached for the given path.
func (c *Cache) Has(path string) bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	_, ok := c.keys[path]
	return ok
}

// Get re-encodes the cached key for the requested network prefix. It never
// re-invokes the device; a miss is reported to the caller as absence.
func (c *Cache) Get(path string, prefix uint16) (AddressInfo, bool) {
	c.mtx.RLock()
	pubKey, ok := c.keys[path]
	c.mtx.RUnlock()
	if !ok {
		return AddressInfo{}, false
	}

	address, err := ss58.Encode(pubKey, prefix)
	if err != nil {
		// Set validates keys, so this only fires for an out-of-range prefix.
		return AddressInfo{}, false
	}

	return AddressInfo{
		Address:   address,
		PubKeyHex: hex.EncodeToString(pubKey),
		Path:      path,
	}, true
}

// Set stores the raw public key for a path, replacing any previous value.
func (c *Cache) Set(path string, pubKey []byte) error {
	if _, err := ss58.Encode(pubKey, 0); err != nil {
		return ErrInvalidPubKey
	}

	key := make([]byte, len(pubKey))
	copy(key, pubKey)

	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.keys[path] = key
	return nil
}

// Remove drops the key cached for the given path, if any.
func (c *Cache) Remove(path string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	delete(c.keys, path)
}

// Clear drops every cached key.
func (c *Cache) Clear() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.keys = map[string][]byte{}
}
