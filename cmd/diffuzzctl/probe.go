package main

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/diffuzz/heap"
	"github.com/joshuapare/diffuzz/heap/block"
	"github.com/joshuapare/diffuzz/heap/config"
	"github.com/spf13/cobra"
)

var (
	probeLen      uint
	probePadding  uint
	probeOverflow uint
)

func init() {
	cmd := newProbeCmd()
	cmd.Flags().UintVar(&probeLen, "len", 10, "Requested allocation length")
	cmd.Flags().UintVar(&probePadding, "padding", 16, "Extra padding bytes")
	cmd.Flags().UintVar(&probeOverflow, "overflow", 16, "Bytes of 0xAA written past the end")
	rootCmd.AddCommand(cmd)
}

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Run a controlled overflow into the padding and report it",
		Long: `The probe command allocates --len bytes with --padding extra bytes, writes
--overflow bytes of 0xAA past the requested end and reports what the padding
probe finds. The overflow must fit inside the padding.

Example:
  diffuzzctl probe --len 10 --padding 16 --overflow 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe()
		},
	}
}

type probeReport struct {
	Variant string `json:"variant"`
	Len     uint64 `json:"len"`
	heap.PaddingReport
}

func runProbe() error {
	h := heap.New(config.Config{ExtraPadding: uintptr(probePadding)})
	if probeOverflow > uint(h.Padding()) {
		return fmt.Errorf("overflow of %d bytes exceeds the %d byte padding", probeOverflow, h.Padding())
	}

	n := uintptr(probeLen)
	fill := h.NextFill()
	p := h.Malloc(n)
	if p == nil {
		return fmt.Errorf("allocation of %d bytes failed", n)
	}
	defer h.Free(p)

	printVerbose("Allocated %d bytes at %p (fill 0x%02x)\n", n, p, fill)

	over := block.Bytes(unsafe.Add(p, n), uintptr(probeOverflow))
	for i := range over {
		over[i] = 0xAA
	}

	report := probeReport{
		Variant:       heap.Variant,
		Len:           uint64(n),
		PaddingReport: heap.ProbePadding(p, n, fill),
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Allocator: %s\n", report.Variant)
	printInfo("  Header: %d bytes (%d requested + %d header + %d padding)\n",
		report.Header, report.Len, block.HeaderSize, report.Padding)
	printInfo("  Fill byte: 0x%02x\n", report.Fill)
	if report.Dirty == 0 {
		printInfo("  Padding clean\n")
		return nil
	}
	printInfo("  Overflow detected: %d dirty bytes, first at padding offset %d\n",
		report.Dirty, report.FirstDirty)
	return nil
}
