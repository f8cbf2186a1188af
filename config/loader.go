package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/murkdev/gameclient/validation"
)

const envPrefix = "GAMECLIENT"

// LoaderOption customizes Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path. Without it, Load searches
// ./config.yml and ./config/config.yml.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path. Without it, Load tries ./.env.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// Load fills cfg from the config file, the .env file and GAMECLIENT_*
// environment variables, then applies defaults and validates. Missing files
// are not an error; env-only configuration is supported.
func Load(cfg *ClientConfig, opts ...LoaderOption) error {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.envFile == "" {
		lc.envFile = ".env"
	}
	if exists(lc.envFile) {
		if err := godotenv.Load(lc.envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", lc.envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	file := lc.configFile
	if file == "" {
		file = findConfigFile()
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := validation.Validate(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// bindEnvKeys registers the known keys so AutomaticEnv sees them even when
// the config file omits the section entirely.
func bindEnvKeys(v *viper.Viper) {
	keys := []string{
		"name", "environment", "debug",
		"logging.level", "logging.format", "logging.output",
		"api.base_url", "api.agent", "api.auth_header",
		"api.initial_credential", "api.timeout",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

// findConfigFile searches the standard locations.
func findConfigFile() string {
	for _, path := range []string{"./config.yml", "./config/config.yml"} {
		if exists(path) {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
