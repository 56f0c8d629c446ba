package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/vidinfra/pricing-engine/internal/types"
)

type Configuration struct {
	Logging LoggingConfig `validate:"required"`
	Catalog CatalogConfig
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// CatalogConfig points at optional YAML catalog files. When a path is empty
// the built in defaults are used (regions) or the caller must supply the
// records in process (plans).
type CatalogConfig struct {
	RegionsFile string
	PlansFile   string
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricing-engine")

	v.SetEnvPrefix("PRICING")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	cfg := GetDefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{
			Level: types.LogLevelInfo,
		},
	}
}

func (c Configuration) Validate() error {
	return validator.New().Struct(c)
}
