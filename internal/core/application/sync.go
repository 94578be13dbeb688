package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/addresscache"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/derivation"
	"github.com/Zondax/polkadot-web-migration-sub005/pkg/interpreter"
)

const (
	// derivationPurpose is the BIP44 purpose component shared by every app.
	derivationPurpose = 44

	// DefaultAccountScanLimit is how many account indexes are derived per
	// app when no explicit limit is configured.
	DefaultAccountScanLimit = 10
)

// SyncService discovers accounts across every configured app. Device
// derivations run once per unique path and are cached; chain and indexer
// reads then fan out per app with bounded concurrency, which is safe
// because they are read-only and independent of the device.
type SyncService struct {
	state    *State
	device   ports.Device
	cache    *addresscache.Cache
	chains   map[domain.AppID]ports.ChainClient
	resolver *MultisigResolver

	maxConcurrency int
	scanLimit      uint32
	destCoinType   uint32
}

// NewSyncService ...
func NewSyncService(
	state *State,
	device ports.Device,
	cache *addresscache.Cache,
	chains map[domain.AppID]ports.ChainClient,
	resolver *MultisigResolver,
	maxConcurrency int,
	scanLimit uint32,
	destCoinType uint32,
) *SyncService {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	if scanLimit == 0 {
		scanLimit = DefaultAccountScanLimit
	}
	return &SyncService{
		state:          state,
		device:         device,
		cache:          cache,
		chains:         chains,
		resolver:       resolver,
		maxConcurrency: maxConcurrency,
		scanLimit:      scanLimit,
		destCoinType:   destCoinType,
	}
}

// SyncAll derives the device addresses for every app and reconciles them
// with on-chain state. Per-app chain failures are recorded on the app;
// only a device-level failure aborts the whole scan.
func (s *SyncService) SyncAll(ctx context.Context) error {
	apps := s.state.Apps()
	for _, app := range apps {
		s.state.SetAppStatus(app.ID, domain.SyncStatusLoading)
	}

	if err := s.deriveDeviceKeys(ctx, apps); err != nil {
		internal := interpreter.Interpret(err, "syncAll")
		for _, app := range apps {
			s.state.SetAppError(app.ID, internal)
		}
		return internal
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for _, app := range apps {
		app := app
		g.Go(func() error {
			s.syncApp(gctx, app)
			return nil
		})
	}
	return g.Wait()
}

// RestartSynchronization clears all verification state, reconnects the
// device and re-triggers the scan only if the device reports both
// connected and app open; otherwise the caller stays on the connect step.
func (s *SyncService) RestartSynchronization(ctx context.Context) (ports.DeviceInfo, error) {
	s.state.ClearVerification()

	info, err := s.device.Connect(ctx)
	if err != nil {
		s.state.SetDeviceInfo(ports.DeviceInfo{})
		return ports.DeviceInfo{}, interpreter.Interpret(err, "restartSynchronization")
	}
	s.state.SetDeviceInfo(info)

	if !info.Connected || !info.AppOpen {
		return info, nil
	}
	return info, s.SyncAll(ctx)
}

// deriveDeviceKeys walks the derivation paths of every app plus the
// consolidated destination paths, hitting the device only for paths the
// cache has not seen. Apps sharing a coin type share one device round
// trip per index.
func (s *SyncService) deriveDeviceKeys(ctx context.Context, apps []domain.App) error {
	coinTypes := map[uint32]uint16{s.destCoinType: 0}
	for _, app := range apps {
		if _, ok := coinTypes[app.CoinType]; !ok {
			coinTypes[app.CoinType] = app.SS58Prefix
		}
	}

	for coinType, prefix := range coinTypes {
		for index := uint32(0); index < s.scanLimit; index++ {
			path := s.accountPath(coinType, index)
			if s.cache.Has(path) {
				continue
			}

			derived, err := s.device.GetAddress(ctx, path, prefix)
			if err != nil {
				return fmt.Errorf("derive %s: %w", path, err)
			}
			if err := s.cache.Set(path, derived.PubKey); err != nil {
				return fmt.Errorf("cache %s: %w", path, err)
			}
		}
	}
	return nil
}

// syncApp reconciles one app's derived addresses with chain state and
// best-effort indexer enrichment.
func (s *SyncService) syncApp(ctx context.Context, app domain.App) {
	chain, ok := s.chains[app.ID]
	if !ok {
		s.state.SetAppError(app.ID, interpreter.New(interpreter.KindSyncError, "syncApp").
			WithContext("reason", "no chain client configured"))
		return
	}

	type derivedAddress struct {
		info  addresscache.AddressInfo
		index uint32
	}

	knownPaths := map[string]string{}
	var addresses []derivedAddress
	for index := uint32(0); index < s.scanLimit; index++ {
		path := s.accountPath(app.CoinType, index)
		info, ok := s.cache.Get(path, app.SS58Prefix)
		if !ok {
			continue
		}
		knownPaths[info.Address] = path
		addresses = append(addresses, derivedAddress{info: info, index: index})
	}

	accounts := make([]domain.Account, 0)
	multisigs := make([]domain.MultisigAccount, 0)
	seenMultisigs := map[string]bool{}

	for _, derived := range addresses {
		chainInfo, err := chain.GetAccountInfo(ctx, derived.info.Address)
		if err != nil {
			s.state.SetAppError(app.ID, interpreter.Interpret(err, "getAccountInfo").
				WithContext("address", derived.info.Address))
			return
		}

		account, populated := s.buildAccount(app, derived.index, derived.info, chainInfo)
		if populated {
			accounts = append(accounts, account)
		}

		resolved, found := s.resolver.Resolve(ctx, derived.info.Address, chain, knownPaths)
		if !found {
			continue
		}
		for _, multisig := range resolved {
			if seenMultisigs[multisig.Address] {
				continue
			}
			seenMultisigs[multisig.Address] = true
			s.enrichMultisig(ctx, chain, app, &multisig)
			multisigs = append(multisigs, multisig)
		}
	}

	s.state.SetAppAccounts(app.ID, accounts, multisigs)
	log.WithFields(log.Fields{
		"app":       app.ID,
		"accounts":  len(accounts),
		"multisigs": len(multisigs),
	}).Debug("app synchronized")
}

// buildAccount assembles one discovered account. Addresses with no
// on-chain footprint are skipped.
func (s *SyncService) buildAccount(
	app domain.App, index uint32, info addresscache.AddressInfo, chainInfo ports.AccountInfo,
) (domain.Account, bool) {
	account := domain.Account{
		AccountBase: domain.AccountBase{
			Address:      info.Address,
			Path:         info.Path,
			PubKey:       info.PubKeyHex,
			Balances:     chainInfo.Balances,
			Registration: chainInfo.Registration,
			AccountIndex: chainInfo.AccountIndex,
			Proxies:      chainInfo.Proxies,
		},
	}

	populated := len(chainInfo.Balances) > 0 ||
		chainInfo.Registration.HasDisplayableItem() ||
		chainInfo.AccountIndex != "" ||
		len(chainInfo.Proxies) > 0
	if !populated {
		return domain.Account{}, false
	}

	for _, balance := range account.Balances {
		if balance.IsNative() {
			if err := balance.Native.Validate(); err != nil {
				account.Error = interpreter.Interpret(err, "validateBalance").
					WithContext("address", account.Address)
			}
		}
	}

	account.Selected = account.Error == nil
	s.attachDestination(app, index, &account.AccountBase)
	return account, true
}

// enrichMultisig attaches balances and a destination to a resolved
// multisig account. Enrichment failures leave the multisig bare rather
// than failing the app.
func (s *SyncService) enrichMultisig(
	ctx context.Context, chain ports.ChainClient, app domain.App, multisig *domain.MultisigAccount,
) {
	chainInfo, err := chain.GetAccountInfo(ctx, multisig.Address)
	if err == nil {
		multisig.Balances = chainInfo.Balances
		multisig.Registration = chainInfo.Registration
		multisig.AccountIndex = chainInfo.AccountIndex
		multisig.Proxies = chainInfo.Proxies
	} else {
		log.WithError(err).WithField("multisig", multisig.Address).
			Debug("multisig balance lookup failed")
	}

	// The multisig migrates to the destination of its first internal
	// member: the consolidated app controls that key.
	for _, member := range multisig.InternalMembers() {
		parsed, err := derivation.Parse(member.Path)
		if err != nil {
			continue
		}
		s.attachDestination(app, parsed.Account, &multisig.AccountBase)
		break
	}
	multisig.Selected = len(multisig.Balances) > 0
}

// attachDestination computes the consolidated-app address the account
// migrates to, read from the cache like every other derived address.
func (s *SyncService) attachDestination(app domain.App, index uint32, base *domain.AccountBase) {
	destPath := s.accountPath(s.destCoinType, index)
	if dest, ok := s.cache.Get(destPath, app.SS58Prefix); ok {
		base.Destination = dest.Address
		base.DestinationPath = destPath
	}
}

func (s *SyncService) accountPath(coinType, index uint32) string {
	return derivation.Path{
		Purpose:      derivationPurpose,
		CoinType:     coinType,
		Account:      index,
		Change:       0,
		AddressIndex: 0,
	}.String()
}
