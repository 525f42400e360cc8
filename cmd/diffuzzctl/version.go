package main

import (
	"fmt"

	"github.com/joshuapare/diffuzz/heap"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("diffuzzctl %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  allocator: %s\n", heap.Variant)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
