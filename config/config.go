package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/ports"
	"github.com/Zondax/polkadot-web-migration-sub005/internal/infrastructure/indexer"
)

const (
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// IndexerEndpointKey is the base URL of the subscan-compatible indexer API
	IndexerEndpointKey = "INDEXER_ENDPOINT"
	// IndexerRequestTimeoutKey are the milliseconds to wait for indexer HTTP responses before timeouts
	IndexerRequestTimeoutKey = "INDEXER_REQUEST_TIMEOUT"
	// DeviceConnectTimeoutKey are the milliseconds to wait for a device operation before it is abandoned
	DeviceConnectTimeoutKey = "DEVICE_CONNECT_TIMEOUT"
	// SyncMaxConcurrencyKey is the number of networks synchronized in parallel against their chain nodes
	SyncMaxConcurrencyKey = "SYNC_MAX_CONCURRENCY"
	// NetworksKey is the comma-separated list of network ids to scan. Empty means every known network
	NetworksKey = "NETWORKS"
	// AccountScanLimitKey is the number of account indexes derived per network during discovery
	AccountScanLimitKey = "DEFAULT_ACCOUNT_SCAN_LIMIT"
	// DestinationCoinTypeKey is the SLIP-44 coin type destination addresses are derived with
	DestinationCoinTypeKey = "DESTINATION_COIN_TYPE"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("MIGRATION")
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(IndexerEndpointKey, "https://polkadot.api.subscan.io")
	vip.SetDefault(IndexerRequestTimeoutKey, 15000)
	vip.SetDefault(DeviceConnectTimeoutKey, 60000)
	vip.SetDefault(SyncMaxConcurrencyKey, 4)
	vip.SetDefault(AccountScanLimitKey, 10)
	vip.SetDefault(DestinationCoinTypeKey, 354)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}
}

//GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

//GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

//GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetDuration reads the given key as milliseconds.
func GetDuration(key string) time.Duration {
	return time.Duration(vip.GetInt(key)) * time.Millisecond
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// IsSet returns whether the give key is set
func IsSet(key string) bool {
	return vip.IsSet(key)
}

//GetIndexer ...
func GetIndexer() (ports.IndexerService, error) {
	endpoint := GetString(IndexerEndpointKey)
	reqTimeout := GetDuration(IndexerRequestTimeoutKey)
	return indexer.NewService(endpoint, reqTimeout)
}

// GetApps returns the networks to scan. With NetworksKey unset every
// known network is returned.
func GetApps() ([]domain.App, error) {
	known := domain.DefaultApps()
	networks := GetString(NetworksKey)
	if networks == "" {
		return known, nil
	}

	byID := make(map[domain.AppID]domain.App)
	for _, app := range known {
		byID[app.ID] = app
	}

	apps := make([]domain.App, 0)
	for _, id := range strings.Split(networks, ",") {
		app, ok := byID[domain.AppID(strings.TrimSpace(id))]
		if !ok {
			return nil, fmt.Errorf("unknown network '%s'", id)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func validate() error {
	indexerEndpoint := GetString(IndexerEndpointKey)
	if _, err := url.Parse(indexerEndpoint); err != nil {
		return fmt.Errorf("indexer endpoint is not a valid url: %s", err)
	}

	if GetInt(IndexerRequestTimeoutKey) <= 0 {
		return fmt.Errorf("indexer request timeout must be a positive number of milliseconds")
	}

	if GetInt(DeviceConnectTimeoutKey) <= 0 {
		return fmt.Errorf("device connect timeout must be a positive number of milliseconds")
	}

	if GetInt(SyncMaxConcurrencyKey) <= 0 {
		return fmt.Errorf("sync concurrency must be a positive number")
	}

	if GetInt(AccountScanLimitKey) <= 0 {
		return fmt.Errorf("account scan limit must be a positive number")
	}
	return nil
}
