// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

// Command fastlz compresses and decompresses files in the FastLZ container
// format (4-byte length header + level-tagged token payload).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/fastlz"
)

const compressedExt = ".flz"

var (
	flagLevel  int
	flagOutput string
)

var rootCmd = &cobra.Command{
	Use:           "fastlz",
	Short:         "FastLZ file compressor and decompressor",
	SilenceErrors: false,
	SilenceUsage:  true,
}

var compressCmd = &cobra.Command{
	Use:   "compress <file>",
	Short: "Compress a file into a FastLZ container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		out := flagOutput
		if out == "" {
			out = in + compressedExt
		}

		data, err := os.ReadFile(in)
		if err != nil {
			return err
		}

		blob, err := fastlz.Compress(data, &fastlz.CompressOptions{Level: flagLevel})
		if err != nil {
			return fmt.Errorf("compress %s: %w", in, err)
		}

		if err := os.WriteFile(out, blob, 0o644); err != nil {
			return err
		}

		ratio := 0.0
		if len(data) > 0 {
			ratio = float64(len(blob)) / float64(len(data)) * 100
		}
		cmd.Printf("%s: %d -> %d bytes (%.1f%%) level %d -> %s\n",
			in, len(data), len(blob), ratio, flagLevel, out)

		return nil
	},
}

var decompressCmd = &cobra.Command{
	Use:   "decompress <file>",
	Short: "Decompress a FastLZ container back to the original file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		out := flagOutput
		if out == "" {
			out = strings.TrimSuffix(in, compressedExt)
			if out == in {
				out = in + ".out"
			}
		}

		blob, err := os.ReadFile(in)
		if err != nil {
			return err
		}

		data, err := fastlz.Decompress(blob, nil)
		if err != nil {
			return fmt.Errorf("decompress %s: %w", in, err)
		}

		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}

		cmd.Printf("%s: %d -> %d bytes -> %s\n", in, len(blob), len(data), out)

		return nil
	},
}

func init() {
	compressCmd.Flags().IntVarP(&flagLevel, "level", "l", fastlz.Level1, "compression level (1 or 2)")
	compressCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default: input + \".flz\")")
	decompressCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default: input without \".flz\")")

	rootCmd.AddCommand(compressCmd, decompressCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
