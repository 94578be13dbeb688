package derivation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		output Path
		err    error
	}{
		{"m/44'/354'/0'/0'/0'", Path{44, 354, 0, 0, 0}, nil},
		{"m/44'/434'/5'/0'/10'", Path{44, 434, 5, 0, 10}, nil},
		{"m/44'/354'/2147483647'/0'/0'", Path{44, 354, 2147483647, 0, 0}, nil},

		// Whitespace around components is tolerated
		{"m/ 44' / 354' / 0' / 0' / 0'", Path{44, 354, 0, 0, 0}, nil},

		// Invalid paths
		{"", Path{}, ErrNullDerivationPath},
		{"m", Path{}, ErrMalformedDerivationPath},
		{"m/44'/354'/0'/0'", Path{}, ErrMalformedDerivationPath},            // 5 segments
		{"m/44'/354'/0'/0'/0'/0'", Path{}, ErrMalformedDerivationPath},      // 7 segments
		{"44'/354'/0'/0'/0'/0'", Path{}, ErrMissingRootMarker},              // relative path
		{"m/44/354'/0'/0'/0'", Path{}, ErrComponentNotHardened},             // soft purpose
		{"m/44'/354'/0'/0'/0", Path{}, ErrComponentNotHardened},             // soft address index
		{"m/44'/abc'/0'/0'/0'", Path{}, ErrInvalidComponent},                // non numeric
		{"m/44'/-1'/0'/0'/0'", Path{}, ErrComponentOutOfRange},              // negative
		{"m/44'/354'/2147483648'/0'/0'", Path{}, ErrComponentOutOfRange},    // overflows hardened range
	}

	for _, tt := range tests {
		path, err := Parse(tt.input)
		if tt.err != nil {
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "input %q: got %v, want %v", tt.input, err, tt.err)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.output, path)
		}
	}
}

func TestParseTagsOffendingComponent(t *testing.T) {
	_, err := Parse("m/44'/354'/0'/0/0'")

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "change", pathErr.Component)
}

func TestRoundTrip(t *testing.T) {
	paths := []string{
		"m/44'/354'/0'/0'/0'",
		"m/44'/434'/12'/0'/7'",
		"m/44'/354'/2147483647'/0'/2147483647'",
	}

	for _, strPath := range paths {
		parsed, err := Parse(strPath)
		require.NoError(t, err)
		assert.Equal(t, strPath, parsed.String())
	}
}

func TestBuildRejectsOutOfRangeComponent(t *testing.T) {
	_, err := Build(Path{44, 354, 1 << 31, 0, 0})

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "account", pathErr.Component)
}

func TestUpdate(t *testing.T) {
	account := uint32(5)
	address := uint32(10)

	tests := []struct {
		name     string
		input    string
		opts     UpdateOpts
		expected string
	}{
		{"account_and_address", "m/44'/354'/0'/0'/0'", UpdateOpts{Account: &account, AddressIndex: &address}, "m/44'/354'/5'/0'/10'"},
		{"account_only", "m/44'/354'/0'/0'/3'", UpdateOpts{Account: &account}, "m/44'/354'/5'/0'/3'"},
		{"address_only", "m/44'/434'/1'/0'/0'", UpdateOpts{AddressIndex: &address}, "m/44'/434'/1'/0'/10'"},
		{"noop", "m/44'/354'/1'/0'/2'", UpdateOpts{}, "m/44'/354'/1'/0'/2'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := Update(tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, updated)
		})
	}
}

func TestUpdateInvalidPath(t *testing.T) {
	account := uint32(1)
	_, err := Update("m/44'/354'/0'/0'", UpdateOpts{Account: &account})
	require.ErrorIs(t, err, ErrMalformedDerivationPath)
}
