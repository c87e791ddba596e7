package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose  bool
	quiet    bool
	endianOp string
	modeOp   string
)

var rootCmd = &cobra.Command{
	Use:   "binctl",
	Short: "Inspect and manipulate raw binary buffers",
	Long: `binctl is a tool for inspecting, bit-twiddling, and carving
structured fields out of raw binary files. It operates on plain byte
buffers with a configurable endianness and bit-addressing mode.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		StringVar(&endianOp, "endian", "big", "Byte order: big, little, or native")
	rootCmd.PersistentFlags().
		StringVar(&modeOp, "mode", "dependent", "Bit addressing mode: dependent or independent")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
