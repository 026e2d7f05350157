package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var (
	appConfig *Config
	configMu  sync.RWMutex
)

// Load unmarshals the current viper state into a Config and caches it.
// Safe to call multiple times (e.g., for config reload).
func Load() (*Config, error) {
	var cfg Config

	decoderConfig := func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}

	if err := viper.Unmarshal(&cfg, viper.DecoderConfigOption(decoderConfig)); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	configMu.Lock()
	appConfig = &cfg
	configMu.Unlock()

	return &cfg, nil
}

// Get returns the cached configuration, loading it on first use.
func Get() (*Config, error) {
	configMu.RLock()
	cached := appConfig
	configMu.RUnlock()

	if cached != nil {
		return cached, nil
	}
	return Load()
}

// DefaultStorePath returns the default on-disk location of the preset store.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "formlens.db")
	}
	return filepath.Join(home, ".local", "share", "formlens", "formlens.db")
}
