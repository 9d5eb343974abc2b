package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pluqqy/walletdeck/pkg/files"
	"github.com/pluqqy/walletdeck/pkg/models"
)

// EnvPrefix is prepended to every environment override, e.g. WALLETDECK_DATA_DIR.
const EnvPrefix = "WALLETDECK"

// Config holds application configuration.
type Config struct {
	DataDir        string           `mapstructure:"data_dir"`
	DefaultNetwork models.NetworkID `mapstructure:"default_network"`
	Log            LogConfig        `mapstructure:"log"`
	Features       Features         `mapstructure:"features"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Features toggles optional UI capabilities.
type Features struct {
	PrivateTags bool `mapstructure:"private_tags"`
}

// Load reads configuration from an optional config file and the environment.
// A .env file in the working directory is applied first; variables already set
// in the environment win over it. cfgFile overrides the config file lookup.
func Load(cfgFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("data_dir", files.DefaultDataDir())
	v.SetDefault("default_network", string(models.DefaultNetworkID))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("features.private_tags", false)

	v.SetConfigType("yaml")
	if cfgFile == "" {
		cfgFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "walletdeck"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.DefaultNetwork == "" {
		c.DefaultNetwork = models.DefaultNetworkID
	}
	return c, nil
}
