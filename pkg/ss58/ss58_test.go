package ss58

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known //Alice sr25519 public key.
const alicePubKeyHex = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func alicePubKey(t *testing.T) []byte {
	t.Helper()
	pk, err := hex.DecodeString(alicePubKeyHex)
	require.NoError(t, err)
	return pk
}

func TestEncode(t *testing.T) {
	pk := alicePubKey(t)

	tests := []struct {
		name    string
		prefix  uint16
		address string
	}{
		{"polkadot", 0, "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"},
		{"kusama", 2, "HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F"},
		{"generic_substrate", 42, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := Encode(pk, tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.address, addr)
		})
	}
}

func TestEncodeInvalidInputs(t *testing.T) {
	_, err := Encode([]byte{0x01, 0x02}, 0)
	require.ErrorIs(t, err, ErrInvalidPubKeyLength)

	_, err = Encode(alicePubKey(t), maxPrefix+1)
	require.ErrorIs(t, err, ErrInvalidNetworkPrefix)
}

func TestDecode(t *testing.T) {
	pk, prefix, err := Decode("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY")
	require.NoError(t, err)
	assert.Equal(t, uint16(42), prefix)
	assert.Equal(t, alicePubKeyHex, hex.EncodeToString(pk))
}

func TestDecodeInvalidAddress(t *testing.T) {
	_, _, err := Decode("not-an-address")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	// Same body as the generic Alice address with the last character changed.
	_, _, err := Decode("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ")
	require.Error(t, err)
}

func TestRoundTripAllPrefixWidths(t *testing.T) {
	pk := alicePubKey(t)

	for _, prefix := range []uint16{0, 2, 42, 63, 64, 810, 16383} {
		addr, err := Encode(pk, prefix)
		require.NoError(t, err)

		gotKey, gotPrefix, err := Decode(addr)
		require.NoError(t, err, "prefix %d", prefix)
		assert.Equal(t, prefix, gotPrefix)
		assert.Equal(t, pk, gotKey)
	}
}
