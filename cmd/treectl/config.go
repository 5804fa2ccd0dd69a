package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "TREECTL"
	configType = "yaml"

	kindRB  = "rb"
	kindBST = "bst"
)

// Config of one treectl invocation, merged from flags, TREECTL_* env vars
// and the optional --config file.
type Config struct {
	Kind     string   `mapstructure:"kind"`
	Remove   []string `mapstructure:"remove"`
	N        int      `mapstructure:"n"`
	Seed     int64    `mapstructure:"seed"`
	LogLevel string   `mapstructure:"log_level"`
	NoColor  bool     `mapstructure:"no_color"`
}

// Validate the merged config.
func (c *Config) Validate() error {
	if c.Kind != kindRB && c.Kind != kindBST {
		return fmt.Errorf("kind must be %q or %q, got %q", kindRB, kindBST, c.Kind)
	}
	if c.N < 0 {
		return errors.New("n must not be negative")
	}
	return nil
}

// loadConfig binds the flags of cmd into a fresh viper and reads configPath
// when given.
func loadConfig(cmd *cobra.Command, configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("kind", kindRB)
	v.SetDefault("log_level", logrus.WarnLevel.String())

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	// flag names use dashes, config keys use underscores.
	for _, k := range []string{"log_level", "no_color"} {
		if f := cmd.Flags().Lookup(strings.ReplaceAll(k, "_", "-")); f != nil {
			if err = v.BindPFlag(k, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", k, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		err = v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
