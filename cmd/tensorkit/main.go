// Package main provides the tensorkit CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tensorkit",
		Short:         "Fixed-shape tensors and a minimal feed-forward network",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tensorkit %s\n", version)
		},
	}

	forwardCmd := &cobra.Command{
		Use:   "forward",
		Short: "Run a seeded network forward on a batch and report loss and accuracy",
		Args:  cobra.NoArgs,
		RunE:  forwardHandler,
	}

	forwardCmd.Flags().Uint64("seed", Seed(), "Random seed for weight initialization (env TENSORKIT_SEED)")
	forwardCmd.Flags().Int("hidden", 8, "Hidden layer width")
	forwardCmd.Flags().Int("batch", 0, "Number of rows to evaluate (0 = all)")
	forwardCmd.Flags().Int("classes", 0, "Number of output classes (0 = largest label + 1)")
	forwardCmd.Flags().String("data", "", "CSV dataset (label,f0,f1,...); defaults to a built-in sample")

	rootCmd.AddCommand(versionCmd, forwardCmd)

	return rootCmd
}
