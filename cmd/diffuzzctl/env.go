package main

import (
	"github.com/joshuapare/diffuzz/heap"
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newEnvCmd())
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the configuration resolved from the environment",
		Long: `The env command resolves LIBDIFFUZZ_NONDETERMINISTIC and
LIBDIFFUZZ_ALLOCATE_EXTRA_MEMORY exactly as the load-time hook does.

Example:
  LIBDIFFUZZ_ALLOCATE_EXTRA_MEMORY=16 diffuzzctl env
  diffuzzctl env --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnv(config.Environ())
		},
	}
}

type envReport struct {
	Variant          string `json:"variant"`
	Nondeterministic bool   `json:"nondeterministic"`
	Padding          uint64 `json:"padding"`
	Warning          string `json:"warning,omitempty"`
}

func runEnv(lookup config.LookupFunc) error {
	cfg, err := config.FromEnv(lookup)
	if heap.Variant == "arena" {
		cfg = cfg.Freestanding()
	}

	report := envReport{
		Variant:          heap.Variant,
		Nondeterministic: cfg.Nondeterministic,
		Padding:          uint64(cfg.ExtraPadding),
	}
	if err != nil {
		report.Warning = err.Error()
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Allocator: %s\n", report.Variant)
	printInfo("  Nondeterministic: %t\n", report.Nondeterministic)
	printInfo("  Extra padding: %d bytes\n", report.Padding)
	if report.Warning != "" {
		printInfo("  Warning: %s (using 0)\n", report.Warning)
	}
	return nil
}
