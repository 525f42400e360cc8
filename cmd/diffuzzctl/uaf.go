package main

import (
	"fmt"

	"github.com/joshuapare/diffuzz/heap"
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/spf13/cobra"
)

var uafLen uint

func init() {
	cmd := newUAFCmd()
	cmd.Flags().UintVar(&uafLen, "len", 64, "Allocation length")
	rootCmd.AddCommand(cmd)
}

func newUAFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uaf",
		Short: "Check that a read through a freed pointer faults",
		Long: `The uaf command allocates a block, frees it and reads through the stale
pointer. On the mapped allocator the read must fault; the arena allocator never
reclaims memory, so the read succeeds there.

Example:
  diffuzzctl uaf --len 4096`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUAF()
		},
	}
}

type uafReport struct {
	Variant  string `json:"variant"`
	Len      uint64 `json:"len"`
	Faulted  bool   `json:"faulted"`
	Expected bool   `json:"expected"`
}

func runUAF() error {
	h := heap.New(config.Config{})

	p := h.Malloc(uintptr(uafLen))
	if p == nil {
		return fmt.Errorf("allocation of %d bytes failed", uafLen)
	}
	if !heap.Accessible(p) {
		return fmt.Errorf("fresh allocation at %p is not readable", p)
	}
	h.Free(p)

	report := uafReport{
		Variant:  heap.Variant,
		Len:      uint64(uafLen),
		Faulted:  !heap.Accessible(p),
		Expected: heap.Variant == "mapped",
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Allocator: %s\n", report.Variant)
	if report.Faulted {
		printInfo("  Read after free: faulted\n")
	} else {
		printInfo("  Read after free: succeeded\n")
	}
	if report.Faulted != report.Expected {
		return fmt.Errorf("unexpected use-after-free behavior for the %s allocator", report.Variant)
	}
	return nil
}
