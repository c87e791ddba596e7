package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/binarylab/bitengine/pkg/structengine"
)

var fieldPattern string

func init() {
	cmd := newFieldCmd()
	cmd.Flags().StringVar(&fieldPattern, "pattern", "", "Comma-separated field widths in bytes, e.g. 4,4,1,1,2,2,2")
	_ = cmd.MarkFlagRequired("pattern")
	rootCmd.AddCommand(cmd)
}

func newFieldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "field <file>",
		Short: "Carve a file into fields per --pattern and print each one",
		Long: `The field command loads a file into a structured field-schema engine
using the widths given by --pattern (in bytes) and prints each field's
index, width, hex value, and bit string.

Example:
  binctl field tcp_header.bin --pattern 4,4,1,1,2,2,2 --endian big`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runField(args[0])
		},
	}
}

func parsePattern(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	pattern := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid field width %q: %w", p, err)
		}
		pattern = append(pattern, n)
	}
	return pattern, nil
}

func runField(path string) error {
	endian, err := parseEndian(endianOp)
	if err != nil {
		return err
	}
	mode, err := parseMode(modeOp)
	if err != nil {
		return err
	}
	pattern, err := parsePattern(fieldPattern)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	e := structengine.New(endian, mode)
	if !e.AssignData(data, pattern) {
		return fmt.Errorf("pattern does not match %s (%d bytes)", path, len(data))
	}

	printInfo("%s", e.ToFormattedString())
	return nil
}
