package main

import (
	"context"
	"fmt"
	"io"

	"github.com/metalagman/admetlab2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type runConfig struct {
	compoundArg string
	outputPath  string
	submitter   admetlab2.Submitter
	log         zerolog.Logger
}

func buildRunConfig(cmd *cobra.Command, args []string, opts *submitOptions) (runConfig, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return runConfig{}, admetlab2.UsageError(err)
	}

	log := newLogger(cmd.ErrOrStderr(), opts.debug)

	clientOpts := []admetlab2.ClientOption{
		admetlab2.WithConfig(cfg),
		admetlab2.WithLogger(log),
	}

	if cfg.ResponseSchemaFile != "" {
		schema, err := admetlab2.ReadSchemaFile(cfg.ResponseSchemaFile)
		if err != nil {
			return runConfig{}, admetlab2.UsageError(err)
		}

		clientOpts = append(clientOpts, admetlab2.WithResponseSchema(schema))
	}

	client, err := admetlab2.NewClient(clientOpts...)
	if err != nil {
		return runConfig{}, admetlab2.UsageError(err)
	}

	return runConfig{
		compoundArg: args[0],
		outputPath:  args[1],
		submitter:   client,
		log:         log,
	}, nil
}

func runAndEmit(ctx context.Context, out io.Writer, cfg runConfig) error {
	compound, err := admetlab2.ResolveCompound(cfg.compoundArg)
	if err != nil {
		return err
	}

	resp, err := cfg.submitter.Submit(ctx, compound)
	if err != nil {
		return err
	}

	if err := admetlab2.WriteOutput(cfg.outputPath, resp); err != nil {
		return err
	}

	cfg.log.Debug().Str("path", cfg.outputPath).Int("bytes", len(resp)).Msg("output written")

	if _, err := fmt.Fprintf(out, "Results written to %s\n", cfg.outputPath); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}

	return nil
}
