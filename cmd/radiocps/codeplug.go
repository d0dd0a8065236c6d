package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type dumpFlags struct {
	output string
}

func newDumpCmd(g *globalFlags) *cobra.Command {
	flags := &dumpFlags{}

	cmd := &cobra.Command{
		Use:   "dump <image>",
		Short: "Decode a binary image into a YAML codeplug",
		Example: `  # Print the codeplug of a saved image
  radiocps dump radio.bin

  # Save it for editing
  radiocps dump radio.bin -o radio.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.load()
			if err != nil {
				return err
			}

			st := env.newStore()
			if err := st.LoadFile(args[0]); err != nil {
				return err
			}
			if flags.output == "" {
				return st.ExportYAML(cmd.OutOrStdout())
			}
			if err := st.ExportYAMLFile(flags.output); err != nil {
				return err
			}
			env.log.Info().Str("file", flags.output).Msg(env.lang.SaveDone)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output YAML file (default stdout)")
	return cmd
}

type buildFlags struct {
	output    string
	base      string
	firstFreq string
}

func newBuildCmd(g *globalFlags) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build <codeplug.yaml>",
		Short: "Encode a YAML codeplug into a binary image",
		Long: `Encode a YAML codeplug into a binary image.

Bytes outside the record windows come from --base when given and are
erased (0xFF) otherwise.`,
		Example: `  # Build a fresh image
  radiocps build radio.yaml -o radio.bin

  # Seed channel 1 when the codeplug has none
  radiocps build radio.yaml -o radio.bin --first-freq 435.00000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.output == "" {
				return missingFlagError(cmd, "--output")
			}
			env, err := g.load()
			if err != nil {
				return err
			}

			st := env.newStore()
			if flags.base != "" {
				if err := st.LoadFile(flags.base); err != nil {
					return err
				}
			}
			if err := st.ImportYAMLFile(args[0]); err != nil {
				return err
			}
			if flags.firstFreq != "" && !st.Channels.Used(1) {
				if err := st.InitFirstChannel(flags.firstFreq); err != nil {
					return fmt.Errorf("%s: %w", env.lang.ErrFreqRange, err)
				}
			}

			if flags.base != "" {
				st.Overlay()
				if err := os.WriteFile(flags.output, st.Image, 0o644); err != nil {
					return fmt.Errorf("write image: %w", err)
				}
			} else if err := st.SaveFile(flags.output); err != nil {
				return err
			}
			env.log.Info().Str("file", flags.output).Msg(env.lang.SaveDone)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output image file (required)")
	cmd.Flags().StringVar(&flags.base, "base", "", "Image supplying bytes outside the records")
	cmd.Flags().StringVar(&flags.firstFreq, "first-freq", "", "Program channel 1 on this frequency (MHz) if empty")
	return cmd
}
