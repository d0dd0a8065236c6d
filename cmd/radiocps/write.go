package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/moffa90/go-radiocps/firmware"
	"github.com/moffa90/go-radiocps/transfer"
)

type writeFlags struct {
	codeplug string
	fontText bool
	crypt    bool
	remember bool
	quiet    bool
}

func newWriteCmd(g *globalFlags) *cobra.Command {
	flags := &writeFlags{}

	cmd := &cobra.Command{
		Use:   "write <image>",
		Short: "Write an image to the radio",
		Long: `Write an upgrade (.dat) or font image to the radio.

The upgrade variant validates the file header before opening the port. A
YAML codeplug given with --codeplug is applied over the image first.
Press Ctrl-C to cancel between chunks.`,
		Example: `  # Upgrade the radio on COM3
  radiocps write --port COM3 BF-5RH.dat

  # Upload a font from the vendor's hex text
  radiocps write --variant font --font-text font.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.load()
			if err != nil {
				return err
			}
			return runWrite(cmd, env, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.codeplug, "codeplug", "", "YAML codeplug to apply before writing")
	cmd.Flags().BoolVar(&flags.fontText, "font-text", false, "Input is hex text (0xAB,0xCD,...)")
	cmd.Flags().BoolVar(&flags.crypt, "crypt", false, "Scramble the payload before writing")
	cmd.Flags().BoolVar(&flags.remember, "remember", false, "Store --port and --baud in Setup.ini")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Do not draw a progress bar")

	return cmd
}

func runWrite(cmd *cobra.Command, env *env, flags *writeFlags, path string) error {
	data, err := readImage(path, flags.fontText)
	if err != nil {
		return err
	}
	if flags.crypt {
		firmware.Crypt(data)
	}

	if env.variant.EndFromHeader {
		hdr, err := firmware.ParseHeader(data)
		if err != nil {
			return err
		}
		env.log.Info().
			Str("model", hdr.Model).
			Str("version", hdr.Version).
			Int("payload", hdr.PayloadEnd).
			Bool("v2", hdr.SecondGeneration()).
			Msg("firmware header")
	}

	st := env.newStore()
	if err := st.Load(bytes.NewReader(data)); err != nil {
		return err
	}
	if flags.codeplug != "" {
		if err := st.ImportYAMLFile(flags.codeplug); err != nil {
			return err
		}
		st.Overlay()
	}

	if flags.remember {
		env.setup.Com = env.port
		env.setup.Baudrate = env.baud
		if err := env.setup.Save(env.setupPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	t := env.engine().Start(ctx, transfer.DirectionWrite, st.Image)

	var bar *progressbar.ProgressBar
	if !flags.quiet {
		bar = newBar(cmd.ErrOrStderr(), env.lang.WriteData)
	}
	var last transfer.Progress
	for p := range t.Events() {
		last = p
		if bar != nil {
			_ = bar.Set(int(p.Percentage))
		}
	}

	err = t.Wait()
	if bar != nil && err == nil {
		_ = bar.Finish()
	}
	fmt.Fprintln(cmd.ErrOrStderr())

	switch {
	case errors.Is(err, transfer.ErrCancelled):
		fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	case err != nil:
		return fmt.Errorf("%s: %w", last.Status, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), last.Status)
	return nil
}

// readImage reads a binary image, or parses it from hex text.
func readImage(path string, text bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	if text {
		return firmware.ParseFontText(f)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

func newBar(w io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
}
