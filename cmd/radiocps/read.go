package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
)

func newReadCmd(g *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read the image from the radio",
		Long: `Read the configuration image from the radio into a file.

The current radio firmware has no read command; the transfer fails at once
and nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return missingFlagError(cmd, "--output")
			}
			env, err := g.load()
			if err != nil {
				return err
			}

			image, err := env.engine().Read(cmd.Context())
			if err != nil {
				env.log.Error().Err(err).Msg(env.lang.ErrReadSupport)
				return err
			}

			st := env.newStore()
			if err := st.Load(bytes.NewReader(image)); err != nil {
				return err
			}
			return st.SaveFile(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output image file (required)")
	return cmd
}

func missingFlagError(cmd *cobra.Command, flag string) error {
	_ = cmd.Help()
	return fmt.Errorf("required flag %s not set", flag)
}
