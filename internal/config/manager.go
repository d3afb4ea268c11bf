package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const defaultLabsEndpoint = "https://api.dataforseo.com/v3"
const defaultPageSpeedEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setupViper(configPath)

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.viper == nil {
		return fmt.Errorf("config not loaded")
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	if err := m.validateConfig(&config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) {
	m.viper.SetConfigFile(configPath)

	m.viper.SetEnvPrefix("SEOGAP")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()
}

func applyDefaults(config *Config) {
	if config.APIs.Labs.Endpoint == "" {
		config.APIs.Labs.Endpoint = defaultLabsEndpoint
	}
	if config.APIs.Labs.Timeout <= 0 {
		config.APIs.Labs.Timeout = 120
	}
	if config.APIs.Labs.PaceMs <= 0 {
		config.APIs.Labs.PaceMs = 1000
	}
	if config.APIs.PageSpeed.Endpoint == "" {
		config.APIs.PageSpeed.Endpoint = defaultPageSpeedEndpoint
	}
	if config.Location.Country == "" {
		config.Location.Country = "India"
	}
	if config.Location.LanguageCode == "" {
		config.Location.LanguageCode = "en"
	}
	if config.Storage.DataDir == "" {
		config.Storage.DataDir = "reports"
	}
	if config.Server.Host == "" {
		config.Server.Host = "127.0.0.1"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "console"
	}
}

func (m *manager) validateConfig(config *Config) error {
	if config.Target.Domain == "" {
		return fmt.Errorf("target.domain cannot be empty")
	}

	for i, comp := range config.Competitors {
		if comp.Domain == "" {
			return fmt.Errorf("competitors[%d].domain cannot be empty", i)
		}
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir cannot be empty")
	}

	return nil
}
