package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "linkprobe",
	Short:        "Probe the Tor link-layer handshake of a relay",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newProbeCmd())
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("linkprobe failed")
		os.Exit(1)
	}
}
