package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/metalagman/admetlab2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ADMETLAB2"

// flag name -> config key
var configFlags = map[string]string{
	"endpoint":             "endpoint",
	"timeout":              "timeout",
	"response-schema-file": "response_schema_file",
}

// loadConfig resolves defaults < config file < ADMETLAB2_* env < explicit flags.
func loadConfig(cmd *cobra.Command, opts *submitOptions) (admetlab2.Config, error) {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return admetlab2.Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	v := viper.New()

	defaults := admetlab2.DefaultConfig()
	v.SetDefault("endpoint", defaults.Endpoint)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("response_schema_file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)

		if err := v.ReadInConfig(); err != nil {
			return admetlab2.Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	for name, key := range configFlags {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return admetlab2.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	var cfg admetlab2.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return admetlab2.Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return admetlab2.Config{}, err
	}

	return cfg, nil
}
