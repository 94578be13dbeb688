package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/application"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
)

const (
	memberAddress   = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	memberPath      = "m/44'/434'/0'/0'/0'"
	multisigAddress = "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"
	externalMember  = "5DAAnrj7VHTznn2AWBemMuyBwZWs6FNFjdyVXUeYum3PTXFy"
)

func TestResolveAbsentWhenNotAMember(t *testing.T) {
	indexer := &mockIndexer{}
	indexer.On("Search", mock.Anything, memberAddress).
		Return(ports.MultisigInfo{}, false, nil)

	resolver := application.NewMultisigResolver(indexer)
	multisigs, found := resolver.Resolve(context.Background(), memberAddress, &mockChainClient{}, nil)

	assert.False(t, found)
	assert.Nil(t, multisigs)
}

// An empty multi_account listing from the indexer is absence, not an error.
func TestResolveAbsentOnEmptyListing(t *testing.T) {
	indexer := &mockIndexer{}
	indexer.On("Search", mock.Anything, memberAddress).
		Return(ports.MultisigInfo{Multisigs: []ports.IndexedMultisig{}}, true, nil)

	resolver := application.NewMultisigResolver(indexer)
	_, found := resolver.Resolve(context.Background(), memberAddress, &mockChainClient{}, nil)

	assert.False(t, found)
}

func TestResolveDegradesIndexerFailureToAbsence(t *testing.T) {
	indexer := &mockIndexer{}
	indexer.On("Search", mock.Anything, memberAddress).
		Return(ports.MultisigInfo{}, false, errors.New("indexer unreachable"))

	resolver := application.NewMultisigResolver(indexer)
	multisigs, found := resolver.Resolve(context.Background(), memberAddress, &mockChainClient{}, nil)

	assert.False(t, found)
	assert.Nil(t, multisigs)
}

func TestResolveBuildsCompositeAccount(t *testing.T) {
	indexer := &mockIndexer{}
	indexer.On("Search", mock.Anything, memberAddress).Return(ports.MultisigInfo{
		Multisigs: []ports.IndexedMultisig{{
			Address:           multisigAddress,
			Threshold:         2,
			Members:           []string{memberAddress, externalMember},
			PendingCallHashes: []string{"0xcallhash"},
		}},
	}, true, nil)

	chain := &mockChainClient{}
	chain.On("GetMultisigCall", mock.Anything, multisigAddress, "0xcallhash").
		Return(ports.MultisigCallDetail{
			Depositor: externalMember,
			Deposit:   decimal.NewFromInt(200),
			Approvals: []string{externalMember},
			Height:    1200,
			Index:     3,
		}, true, nil)

	resolver := application.NewMultisigResolver(indexer)
	knownPaths := map[string]string{memberAddress: memberPath}
	multisigs, found := resolver.Resolve(context.Background(), memberAddress, chain, knownPaths)

	require.True(t, found)
	require.Len(t, multisigs, 1)

	multisig := multisigs[0]
	assert.Equal(t, multisigAddress, multisig.Address)
	require.NotNil(t, multisig.Threshold)
	assert.Equal(t, uint32(2), *multisig.Threshold)
	assert.True(t, multisig.IsMultisig())

	require.Len(t, multisig.Members, 2)
	assert.True(t, multisig.Members[0].Internal)
	assert.Equal(t, memberPath, multisig.Members[0].Path)
	assert.False(t, multisig.Members[1].Internal)
	assert.Empty(t, multisig.Members[1].Path)

	require.Len(t, multisig.PendingCalls, 1)
	call := multisig.PendingCalls[0]
	assert.Equal(t, "0xcallhash", call.CallHash)
	assert.Equal(t, externalMember, call.Depositor)
	assert.Equal(t, []string{externalMember}, call.Approvals)
	assert.Equal(t, uint64(1200), call.Height)
}

func TestResolveSkipsVanishedCalls(t *testing.T) {
	indexer := &mockIndexer{}
	indexer.On("Search", mock.Anything, memberAddress).Return(ports.MultisigInfo{
		Multisigs: []ports.IndexedMultisig{{
			Address:           multisigAddress,
			Threshold:         2,
			Members:           []string{memberAddress},
			PendingCallHashes: []string{"0xexecuted"},
		}},
	}, true, nil)

	chain := &mockChainClient{}
	chain.On("GetMultisigCall", mock.Anything, multisigAddress, "0xexecuted").
		Return(ports.MultisigCallDetail{}, false, nil)

	resolver := application.NewMultisigResolver(indexer)
	multisigs, found := resolver.Resolve(context.Background(), memberAddress, chain, nil)

	require.True(t, found)
	require.Len(t, multisigs, 1)
	assert.Empty(t, multisigs[0].PendingCalls)
}

func TestResolveDegradesChainFailureToAbsence(t *testing.T) {
	indexer := &mockIndexer{}
	indexer.On("Search", mock.Anything, memberAddress).Return(ports.MultisigInfo{
		Multisigs: []ports.IndexedMultisig{{
			Address:           multisigAddress,
			Threshold:         2,
			Members:           []string{memberAddress},
			PendingCallHashes: []string{"0xcallhash"},
		}},
	}, true, nil)

	chain := &mockChainClient{}
	chain.On("GetMultisigCall", mock.Anything, multisigAddress, "0xcallhash").
		Return(ports.MultisigCallDetail{}, false, errors.New("storage query failed"))

	resolver := application.NewMultisigResolver(indexer)
	multisigs, found := resolver.Resolve(context.Background(), memberAddress, chain, nil)

	assert.False(t, found)
	assert.Nil(t, multisigs)
}
