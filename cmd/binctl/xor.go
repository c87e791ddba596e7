package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binarylab/bitengine/pkg/binengine"
)

func init() {
	rootCmd.AddCommand(newXorCmd())
}

func newXorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xor <file-a> <file-b>",
		Short: "XOR two equal-length files and print the result",
		Long: `The xor command loads two files of equal length into binary data engines
and XORs them bitwise, printing the hex result.

Example:
  binctl xor left.bin right.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXor(args[0], args[1])
		},
	}
}

func runXor(pathA, pathB string) error {
	endian, err := parseEndian(endianOp)
	if err != nil {
		return err
	}
	mode, err := parseMode(modeOp)
	if err != nil {
		return err
	}

	dataA, err := os.ReadFile(pathA)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", pathA, err)
	}
	dataB, err := os.ReadFile(pathB)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", pathB, err)
	}

	a, err := binengine.NewFromCopy(dataA, endian, mode)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", pathA, err)
	}
	b, err := binengine.NewFromCopy(dataB, endian, mode)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", pathB, err)
	}

	result, ok := a.Xor(b)
	if !ok {
		return fmt.Errorf("xor failed: %s is %d bytes, %s is %d bytes", pathA, a.LengthBytes(), pathB, b.LengthBytes())
	}

	printInfo("%s\n", result.ToHexString(true))
	return nil
}
