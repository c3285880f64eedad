package main

import (
	"github.com/metalagman/admetlab2"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	opts := &submitOptions{}
	root := &cobra.Command{
		Use:           "admetlab2 <smiles_or_input_file> <output_json>",
		Short:         "Submit a compound to the local ADMETLab2 service and save the JSON result",
		Version:       version,
		Args:          requireArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildRunConfig(cmd, args, opts)
			if err != nil {
				return err
			}

			return runAndEmit(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	addFlags(root, opts)

	return root
}

// requireArgs rejects fewer than n positional args with the usage message.
// Extra args are ignored.
func requireArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return admetlab2.UsageError(admetlab2.ErrUsage)
		}

		return nil
	}
}
