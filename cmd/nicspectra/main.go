package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:           "nicspectra",
		Short:         "NSM-22 seismic spectra and RNC-07 wind loads for Nicaragua",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", os.Getenv("DATA_DIR"),
		"Directory with Aceleraciones.xlsx, Vs30.xlsx and system workbooks")

	rootCmd.AddCommand(seismicCmd(&dataDir))
	rootCmd.AddCommand(windCmd())
	rootCmd.AddCommand(ashCmd())
	rootCmd.AddCommand(sitesCmd(&dataDir))
	rootCmd.AddCommand(systemsCmd(&dataDir))
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}
