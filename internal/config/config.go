package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the example-program configuration loaded from files and
// environment variables.
type Config struct {
	AppName      string `mapstructure:"app_name"`
	Env          string `mapstructure:"app_env"`
	LogLevel     string `mapstructure:"log_level"`
	ProfilesFile string `mapstructure:"profiles_file"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "jsonfetch")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("profiles_file", "./configs/profiles.yaml")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ProfilesFile == "" {
		return nil, fmt.Errorf("profiles_file must not be empty")
	}

	return &cfg, nil
}
