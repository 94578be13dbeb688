package application_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
)

// **** Device ****

type mockDevice struct {
	mock.Mock
}

func (m *mockDevice) Connect(ctx context.Context) (ports.DeviceInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.DeviceInfo), args.Error(1)
}

func (m *mockDevice) GetAddress(ctx context.Context, path string, prefix uint16) (ports.DeviceAddress, error) {
	args := m.Called(ctx, path, prefix)
	return args.Get(0).(ports.DeviceAddress), args.Error(1)
}

func (m *mockDevice) VerifyAddress(ctx context.Context, path string, prefix uint16) (bool, error) {
	args := m.Called(ctx, path, prefix)
	return args.Bool(0), args.Error(1)
}

func (m *mockDevice) Sign(ctx context.Context, path string, payload []byte) ([]byte, error) {
	args := m.Called(ctx, path, payload)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

func (m *mockDevice) OnDisconnect(fn func(error)) {
	m.Called(fn)
}

func (m *mockDevice) Close() error {
	args := m.Called()
	return args.Error(0)
}

// **** ChainClient ****

type mockChainClient struct {
	mock.Mock
}

func (m *mockChainClient) GetAccountInfo(ctx context.Context, address string) (ports.AccountInfo, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(ports.AccountInfo), args.Error(1)
}

func (m *mockChainClient) GetMultisigCall(
	ctx context.Context, multisigAddress, callHash string,
) (ports.MultisigCallDetail, bool, error) {
	args := m.Called(ctx, multisigAddress, callHash)
	return args.Get(0).(ports.MultisigCallDetail), args.Bool(1), args.Error(2)
}

func (m *mockChainClient) BuildTransfer(ctx context.Context, transfer ports.Transfer) ([]byte, error) {
	args := m.Called(ctx, transfer)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

func (m *mockChainClient) EstimateFee(ctx context.Context, payload []byte) (decimal.Decimal, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockChainClient) Submit(ctx context.Context, payload, signature []byte) (string, error) {
	args := m.Called(ctx, payload, signature)
	return args.String(0), args.Error(1)
}

// **** Indexer ****

type mockIndexer struct {
	mock.Mock
}

func (m *mockIndexer) Search(ctx context.Context, address string) (ports.MultisigInfo, bool, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(ports.MultisigInfo), args.Bool(1), args.Error(2)
}

func (m *mockIndexer) Referenda(
	ctx context.Context, address string, page, rows int,
) ([]ports.ReferendumVote, int, error) {
	args := m.Called(ctx, address, page, rows)

	var res []ports.ReferendumVote
	if a := args.Get(0); a != nil {
		res = a.([]ports.ReferendumVote)
	}
	return res, args.Int(1), args.Error(2)
}
