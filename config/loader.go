package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

const (
	defaultPort           = 8791
	defaultTopN           = 5
	defaultZThreshold     = 2.5
	defaultMaxUploadBytes = 32 << 20
)

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./configs/config.yml"}
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		paths = append([]string{p}, paths...)
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Analysis); err != nil {
		return err
	}
	if err := v.Struct(cfg.Dataset); err != nil {
		return err
	}
	Config = cfg
	ApplyDefaults(&Config)
	return nil
}

// ApplyDefaults fills zero-valued fields with the documented defaults. Called
// after a successful load, and usable on its own when no config file exists.
func ApplyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Analysis.TopN == 0 {
		cfg.Analysis.TopN = defaultTopN
	}
	if cfg.Analysis.ZThreshold == 0 {
		cfg.Analysis.ZThreshold = defaultZThreshold
	}
	if cfg.Dataset.MaxUploadBytes == 0 {
		cfg.Dataset.MaxUploadBytes = defaultMaxUploadBytes
	}
}
