package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binarylab/bitengine/pkg/binengine"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex-dump a file's bytes and bit string",
		Long: `The dump command loads a file into a binary data engine and prints
its hex representation and bit-level string under the active endian/mode flags.

Example:
  binctl dump payload.bin
  binctl dump payload.bin --endian little --mode independent`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
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

	printVerbose("Loading %d bytes from %s\n", len(data), path)

	e, err := binengine.NewFromCopy(data, endian, mode)
	if err != nil {
		return fmt.Errorf("failed to load buffer: %w", err)
	}

	printInfo("Hex:  %s\n", e.ToHexString(true))
	printInfo("Bits: %s\n", e.Bits().String())
	return nil
}
