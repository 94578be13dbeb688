package chain

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/ss58"
)

func encodeKey(t *testing.T, firstByte, lastByte byte) string {
	t.Helper()
	pubKey := make([]byte, 32)
	pubKey[0] = firstByte
	pubKey[31] = lastByte
	address, err := ss58.Encode(pubKey, 0)
	require.NoError(t, err)
	return address
}

func TestGetAccountInfoIsDeterministic(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulated()
	funded := encodeKey(t, 3, 0)

	first, err := sim.GetAccountInfo(ctx, funded)
	require.NoError(t, err)
	require.Len(t, first.Balances, 1)

	second, err := sim.GetAccountInfo(ctx, funded)
	require.NoError(t, err)
	require.Len(t, second.Balances, 1)

	assert.True(t, first.Balances[0].Native.Free.Equal(second.Balances[0].Native.Free))
	assert.True(t, first.Balances[0].Native.Transferable.IsPositive())
	require.NoError(t, first.Balances[0].Native.Validate())
}

func TestUnfundedAddressHasNoFootprint(t *testing.T) {
	sim := NewSimulated()

	info, err := sim.GetAccountInfo(context.Background(), encodeKey(t, 3, 1))
	require.NoError(t, err)
	assert.Empty(t, info.Balances)
}

func TestSubmitRecordsTransfers(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulated()
	transfer := ports.Transfer{
		Sender:      encodeKey(t, 1, 0),
		Destination: encodeKey(t, 2, 4),
		Amount:      decimal.NewFromInt(1000),
	}

	payload, err := sim.BuildTransfer(ctx, transfer)
	require.NoError(t, err)

	fee, err := sim.EstimateFee(ctx, payload)
	require.NoError(t, err)
	assert.True(t, fee.IsPositive())

	txHash, err := sim.Submit(ctx, payload, []byte("signature"))
	require.NoError(t, err)
	assert.Regexp(t, "^0x[0-9a-f]{64}$", txHash)

	submitted := sim.Submitted()
	require.Len(t, submitted, 1)
	assert.Equal(t, transfer.Sender, submitted[0].Sender)
	assert.Equal(t, transfer.Destination, submitted[0].Destination)
	assert.True(t, transfer.Amount.Equal(submitted[0].Amount))
}
