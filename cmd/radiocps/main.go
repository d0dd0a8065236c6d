package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "radiocps",
		Short: "Programming tool for BF-5RH class two-way radios",
		Long: `radiocps writes firmware, font and configuration images to the radio
over its serial programming cable, and converts between binary images,
YAML codeplugs and the vendor's text resources.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.port, "port", "", "Serial port (default from Setup.ini)")
	pf.IntVar(&g.baud, "baud", 0, "Baud rate (default from Setup.ini)")
	pf.StringVar(&g.variant, "variant", "upgrade", "Protocol variant: upgrade or font")
	pf.StringVar(&g.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&g.setupPath, "setup", "Setup.ini", "Path to Setup.ini")
	pf.StringVar(&g.langDir, "lang-dir", "lang", "Directory holding <language>.ini tables")

	rootCmd.AddCommand(newVersionCmd(g))
	rootCmd.AddCommand(newWriteCmd(g))
	rootCmd.AddCommand(newReadCmd(g))
	rootCmd.AddCommand(newDumpCmd(g))
	rootCmd.AddCommand(newBuildCmd(g))
	rootCmd.AddCommand(newCryptCmd())
	rootCmd.AddCommand(newFontCmd())
	rootCmd.AddCommand(newPortsCmd())

	return rootCmd
}

func newVersionCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "radiocps version %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "date: %s\n", date)
			fmt.Fprintf(out, "setup: %s %s\n", env.setup.Version, env.setup.Company)
			return nil
		},
	}
}
