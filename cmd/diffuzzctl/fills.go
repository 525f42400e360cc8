package main

import (
	"fmt"

	"github.com/joshuapare/diffuzz/heap"
	"github.com/joshuapare/diffuzz/heap/block"
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/spf13/cobra"
)

var (
	fillsCount int
	fillsSeed  int
	fillsRand  bool
)

func init() {
	cmd := newFillsCmd()
	cmd.Flags().IntVarP(&fillsCount, "count", "n", 8, "Number of allocations")
	cmd.Flags().IntVar(&fillsSeed, "seed", -1, "Pin the nondeterministic seed byte (0-255)")
	cmd.Flags().BoolVar(&fillsRand, "nondeterministic", false, "Seed the fill counter randomly")
	rootCmd.AddCommand(cmd)
}

func newFillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fills",
		Short: "Print the fill byte observed by consecutive allocations",
		Long: `The fills command allocates a series of blocks and prints the byte each
one was filled with. Without --nondeterministic the sequence always starts at 0.

Example:
  diffuzzctl fills -n 4
  diffuzzctl fills --nondeterministic --seed 200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFills()
		},
	}
}

func runFills() error {
	if fillsCount <= 0 {
		return fmt.Errorf("count must be positive, got %d", fillsCount)
	}
	if fillsSeed > 255 {
		return fmt.Errorf("seed must be a byte, got %d", fillsSeed)
	}

	cfg := config.Config{Nondeterministic: fillsRand || fillsSeed >= 0}
	if fillsSeed >= 0 {
		seed := uint8(fillsSeed)
		cfg.Seed = &seed
	}
	h := heap.New(cfg)

	fills := make([]byte, 0, fillsCount)
	for i := range fillsCount {
		p := h.Malloc(1)
		if p == nil {
			return fmt.Errorf("allocation %d failed", i)
		}
		fills = append(fills, block.Bytes(p, 1)[0])
		h.Free(p)
	}

	if jsonOut {
		ints := make([]int, len(fills))
		for i, b := range fills {
			ints[i] = int(b)
		}
		return printJSON(map[string]any{"fills": ints})
	}

	for i, b := range fills {
		printInfo("%3d: 0x%02x\n", i, b)
	}
	return nil
}
