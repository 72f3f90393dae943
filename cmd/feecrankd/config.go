// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feecrankd - Configuration
//
// Runtime knobs read from a viper-backed config file whose path is the
// daemon's one cobra flag (--config), the pattern the pack's node daemons
// use for their own config loading.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the crank poller and its HTTP surface need.
type Config struct {
	// RPCEndpoint is the base URL of the host chain's gRPC-gateway REST
	// endpoint, e.g. "http://localhost:1317".
	RPCEndpoint string `mapstructure:"rpc_endpoint"`

	// CrankAddress is the bech32 account this daemon signs MsgDistribute
	// submissions with. The crank is permissionless: any funded account
	// may run this daemon against the same vault.
	CrankAddress string `mapstructure:"crank_address"`

	// Vaults lists the vault ids (64-char hex) this daemon cranks, each
	// paired with the path to its cohort manifest.
	Vaults []VaultConfig `mapstructure:"vaults"`

	// PageSize bounds how many cohort entries are submitted per
	// MsgDistribute call.
	PageSize int `mapstructure:"page_size"`

	// PollCron is the robfig/cron schedule the poller checks vaults on.
	// Cooldown enforcement lives on-chain; this only bounds how promptly
	// the daemon notices a window has become croakable.
	PollCron string `mapstructure:"poll_cron"`

	// MetricsAddr is the listen address for the /metrics and /healthz
	// HTTP surface.
	MetricsAddr string `mapstructure:"metrics_addr"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// RequestTimeout bounds each RPC call the poller makes.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// VaultConfig pairs a vault id with the cohort manifest describing which
// stream references and recipients make up its investor cohort.
type VaultConfig struct {
	VaultID        string `mapstructure:"vault_id"`
	CohortManifest string `mapstructure:"cohort_manifest"`
}

func defaultConfig() Config {
	return Config{
		RPCEndpoint:    "http://localhost:1317",
		PageSize:       50,
		PollCron:       "*/5 * * * *",
		MetricsAddr:    ":9464",
		LogLevel:       "info",
		RequestTimeout: 10 * time.Second,
	}
}

// loadConfig reads configPath (if non-empty) over defaultConfig.
// FEECRANKD_-prefixed environment variables override only keys that appear
// in that config file; with an empty configPath they are not consulted.
func loadConfig(configPath string) (Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetEnvPrefix("feecrankd")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", configPath, err)
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", configPath, err)
		}
	}

	if cfg.RPCEndpoint == "" {
		return cfg, fmt.Errorf("rpc_endpoint must not be empty")
	}
	if len(cfg.Vaults) == 0 {
		return cfg, fmt.Errorf("at least one vault must be configured")
	}
	if cfg.PageSize <= 0 {
		return cfg, fmt.Errorf("page_size must be positive")
	}

	return cfg, nil
}
