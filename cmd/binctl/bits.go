package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binarylab/bitengine/pkg/binengine"
)

var (
	bitsRotate int
	bitsShift  int
	bitsOut    string
)

func init() {
	cmd := newBitsCmd()
	cmd.Flags().IntVar(&bitsRotate, "rotate", 0, "Rotate left by N bits (negative rotates right)")
	cmd.Flags().IntVar(&bitsShift, "shift", 0, "Shift left by N bits, zero-filled (negative shifts right)")
	cmd.Flags().StringVar(&bitsOut, "out", "", "Write the transformed bytes to this path instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bits <file>",
		Short: "Apply a rotate or shift to a file's bit stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBits(args[0])
		},
	}
}

func runBits(path string) error {
	endian, err := parseEndian(endianOp)
	if err != nil {
		return err
	}
	mode, err := parseMode(modeOp)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	e, err := binengine.NewFromCopy(data, endian, mode)
	if err != nil {
		return fmt.Errorf("failed to load buffer: %w", err)
	}

	view := e.Bits()
	if bitsRotate > 0 {
		view.RotateLeft(bitsRotate)
	} else if bitsRotate < 0 {
		view.RotateRight(-bitsRotate)
	}
	if bitsShift > 0 {
		view.ShiftLeft(bitsShift, false)
	} else if bitsShift < 0 {
		view.ShiftRight(-bitsShift, false)
	}

	if bitsOut != "" {
		if err := os.WriteFile(bitsOut, e.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", bitsOut, err)
		}
		printInfo("Wrote %d bytes to %s\n", e.LengthBytes(), bitsOut)
		return nil
	}

	printInfo("%s\n", e.ToHexString(true))
	return nil
}
