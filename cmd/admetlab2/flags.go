package main

import (
	"time"

	"github.com/metalagman/admetlab2"
	"github.com/spf13/cobra"
)

type submitOptions struct {
	endpoint           string
	timeout            time.Duration
	responseSchemaFile string
	configFile         string
	envFile            string
	debug              bool
}

func addFlags(cmd *cobra.Command, opts *submitOptions) {
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", admetlab2.DefaultEndpoint, "prediction service URL")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", admetlab2.DefaultTimeout, "service call timeout")
	cmd.Flags().StringVar(&opts.responseSchemaFile, "response-schema-file", "", "path to a JSON schema the response must satisfy")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "path to a config file (yaml, json or toml)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "path to a dotenv file with "+envPrefix+"_* variables")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log diagnostics to stderr")
}
