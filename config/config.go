package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// EnvPrefix prefixes every environment variable the config reads, e.g. PPTXGEN_LISTEN_ADDRESS.
const EnvPrefix = "PPTXGEN"

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", ModeAuto)
	v.SetDefault("listen_address", "127.0.0.1:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("render.default_slots", 4)
	v.SetDefault("render.decks", map[string]DeckLimit{})
	v.SetDefault("render.acquire_timeout", "30s")
	v.SetDefault("rate_limit.rps", 0)
	v.SetDefault("rate_limit.burst", 10)
}

// Load reads the optional config file, the environment and any bound flags, in increasing precedence.
// flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := configuration.validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func (c *Config) validate() error {
	var errs []error
	switch c.Mode {
	case ModeAuto, ModeLambda, ModeHTTP:
	default:
		errs = append(errs, fmt.Errorf("mode must be one of %s, %s, %s, got %q", ModeAuto, ModeLambda, ModeHTTP, c.Mode))
	}
	if c.ListenAddress == "" {
		errs = append(errs, errors.New("listen_address is required"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.Render.DefaultSlots <= 0 {
		errs = append(errs, errors.New("render.default_slots must be positive"))
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rate_limit.burst must be positive when rate_limit.rps is set"))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level. It is valid after Load succeeded.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// LoadConfig loads the configuration once and stores it as the global config.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	var err error
	once.Do(func() {
		var configuration *Config
		configuration, err = Load(configFile, flags)
		if err != nil {
			return
		}
		cfg = configuration
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

// GetConfig returns the loaded configuration.
// It panics if the configuration has not been set.
func GetConfig() *Config {
	if cfg == nil {
		panic("Config has not been set! Call LoadConfig first.")
	}
	return cfg
}
