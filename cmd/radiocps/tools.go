package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-radiocps/firmware"
	"github.com/moffa90/go-radiocps/protocol"
	"github.com/moffa90/go-radiocps/serialport"
)

func newCryptCmd() *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "crypt <in> <out>",
		Short: "Scramble or unscramble an upgrade payload",
		Long: `Scramble or unscramble an upgrade payload. The operation is its own
inverse; the 80-byte header is left alone. With --text the whole file is
treated as a text resource.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			if text {
				firmware.CryptText(data)
			} else {
				firmware.Crypt(data)
			}

			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "Input is a text resource")
	return cmd
}

func newFontCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "font <in> <out>",
		Short: "Convert a font between hex text and binary",
		Example: `  # Text to binary
  radiocps font font.txt font.bin

  # Binary back to text
  radiocps font --reverse font.bin font.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if reverse {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				out, err := os.Create(args[1])
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				if err := firmware.FormatFontText(out, data); err != nil {
					out.Close()
					return err
				}
				return out.Close()
			}

			data, err := readImage(args[0], true)
			if err != nil {
				return err
			}
			if len(data) > protocol.FontImageSize {
				return fmt.Errorf("font is %d bytes, maximum %d", len(data), protocol.FontImageSize)
			}
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "Convert binary to hex text")
	return cmd
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := serialport.List()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no serial ports found")
				return nil
			}
			for _, p := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
