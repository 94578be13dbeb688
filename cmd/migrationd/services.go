package main

import (
	"github.com/urfave/cli/v2"

	"github.com/Zondax/polkadot-web-migration-sub005/config"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/application"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/infrastructure/chain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/infrastructure/device"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/addresscache"
)

type services struct {
	state        *application.State
	indexer      ports.IndexerService
	simulated    map[domain.AppID]*chain.Simulated
	sync         *application.SyncService
	verification *application.VerificationService
	migration    *application.MigrationService
}

// buildServices wires the application against a simulated device and
// simulated per-network chain clients. The indexer is the real HTTP proxy;
// multisig enrichment degrades to absence when it is unreachable.
func buildServices(ctx *cli.Context) (*services, error) {
	apps, err := config.GetApps()
	if err != nil {
		return nil, err
	}

	indexerSvc, err := config.GetIndexer()
	if err != nil {
		return nil, err
	}

	dev := device.NewSerializedDevice(
		device.NewSimulated(ctx.String("seed")),
		config.GetDuration(config.DeviceConnectTimeoutKey),
	)

	simulated := make(map[domain.AppID]*chain.Simulated)
	chains := make(map[domain.AppID]ports.ChainClient)
	for _, app := range apps {
		client := chain.NewSimulated()
		simulated[app.ID] = client
		chains[app.ID] = client
	}

	state := application.NewState()
	state.SetApps(apps)

	syncSvc := application.NewSyncService(
		state,
		dev,
		addresscache.NewCache(),
		chains,
		application.NewMultisigResolver(indexerSvc),
		config.GetInt(config.SyncMaxConcurrencyKey),
		uint32(config.GetInt(config.AccountScanLimitKey)),
		uint32(config.GetInt(config.DestinationCoinTypeKey)),
	)

	return &services{
		state:        state,
		indexer:      indexerSvc,
		simulated:    simulated,
		sync:         syncSvc,
		verification: application.NewVerificationService(state, dev),
		migration: application.NewMigrationService(
			state, dev, chains, application.NewTxStatusController(),
		),
	}, nil
}
