// Package config loads bridge settings from a TOML file and the
// environment. File keys and BRIDGE_* environment variables carry the
// same names, with dots replaced by underscores in the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "bridge"
	configType = "toml"
	configDir  = ".billing-bridge"
	envPrefix  = "BRIDGE"

	defaultBrand        = "the billing panel"
	defaultSyncSchedule = "0 3 * * *"
	defaultLogLevel     = "info"
	stateFileName       = "sync-state.toml"
)

type Config struct {
	Panel   PanelConfig
	Billing BillingConfig
	Tickets TicketConfig
	Sync    SyncConfig
	Brand   string
	Log     LogConfig
}

type PanelConfig struct {
	Hostname string
	APIKey   string
}

type BillingConfig struct {
	DSN    string
	APIURL string
	APIKey string
}

type TicketConfig struct {
	ClientID string
}

type SyncConfig struct {
	StatePath string
	Schedule  string
}

type LogConfig struct {
	Level string
}

// Load reads bridge.toml from ~/.billing-bridge or the working directory.
// A missing file is fine; every key can come from the environment instead.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.AddConfigPath(".")

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("brand", defaultBrand)
	cfg.SetDefault("sync.state_path", filepath.Join(homeDir, configDir, stateFileName))
	cfg.SetDefault("sync.schedule", defaultSyncSchedule)
	cfg.SetDefault("log.level", defaultLogLevel)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		Panel: PanelConfig{
			Hostname: cfg.GetString("panel.hostname"),
			APIKey:   cfg.GetString("panel.api_key"),
		},
		Billing: BillingConfig{
			DSN:    cfg.GetString("billing.dsn"),
			APIURL: cfg.GetString("billing.api_url"),
			APIKey: cfg.GetString("billing.api_key"),
		},
		Tickets: TicketConfig{
			ClientID: cfg.GetString("tickets.client_id"),
		},
		Sync: SyncConfig{
			StatePath: cfg.GetString("sync.state_path"),
			Schedule:  cfg.GetString("sync.schedule"),
		},
		Brand: cfg.GetString("brand"),
		Log: LogConfig{
			Level: cfg.GetString("log.level"),
		},
	}

	return loaded, nil
}
