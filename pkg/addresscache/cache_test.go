package addresscache_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zondax/polkadot-web-migration-sub005/pkg/addresscache"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/ss58"
)

const testPath = "m/44'/354'/0'/0'/0'"

func testPubKey(t *testing.T) []byte {
	t.Helper()
	pk, err := hex.DecodeString(
		"d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d",
	)
	require.NoError(t, err)
	return pk
}

func TestSetAndGet(t *testing.T) {
	cache := addresscache.NewCache()
	pk := testPubKey(t)

	require.False(t, cache.Has(testPath))
	require.NoError(t, cache.Set(testPath, pk))
	require.True(t, cache.Has(testPath))

	info, ok := cache.Get(testPath, 0)
	require.True(t, ok)
	assert.Equal(t, testPath, info.Path)
	assert.Equal(t, hex.EncodeToString(pk), info.PubKeyHex)
	assert.NotEmpty(t, info.Address)
}

func TestGetMiss(t *testing.T) {
	cache := addresscache.NewCache()

	_, ok := cache.Get(testPath, 0)
	assert.False(t, ok)
}

func TestSetRejectsInvalidKey(t *testing.T) {
	cache := addresscache.NewCache()

	err := cache.Set(testPath, []byte{0x01})
	require.ErrorIs(t, err, addresscache.ErrInvalidPubKey)
	assert.False(t, cache.Has(testPath))
}

// The cache is network-agnostic: reads with different prefixes differ only
// in address encoding, never in the underlying key.
func TestNetworkAgnosticReads(t *testing.T) {
	cache := addresscache.NewCache()
	pk := testPubKey(t)
	require.NoError(t, cache.Set(testPath, pk))

	polkadot, ok := cache.Get(testPath, 0)
	require.True(t, ok)
	kusama, ok := cache.Get(testPath, 2)
	require.True(t, ok)

	assert.NotEqual(t, polkadot.Address, kusama.Address)
	assert.Equal(t, polkadot.PubKeyHex, kusama.PubKeyHex)

	key0, _, err := ss58.Decode(polkadot.Address)
	require.NoError(t, err)
	key2, _, err := ss58.Decode(kusama.Address)
	require.NoError(t, err)
	assert.Equal(t, key0, key2)
}

func TestRemoveAndClear(t *testing.T) {
	cache := addresscache.NewCache()
	pk := testPubKey(t)

	otherPath := "m/44'/354'/1'/0'/0'"
	require.NoError(t, cache.Set(testPath, pk))
	require.NoError(t, cache.Set(otherPath, pk))

	cache.Remove(testPath)
	assert.False(t, cache.Has(testPath))
	assert.True(t, cache.Has(otherPath))

	cache.Clear()
	assert.False(t, cache.Has(otherPath))
}
