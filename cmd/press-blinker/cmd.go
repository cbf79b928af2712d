package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "press-blinker",
		Short: "Button press classifier and LED blinker",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Lookup("debug").Changed {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.PersistentFlags().Bool("debug", false, "Turn on debug logging.")

	return rootCmd
}

var (
	buildTime    = "unknown"
	buildVersion = "dev"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
		},
	}
}

func newStartCmd() *cobra.Command {
	configFile := ""
	cmd := cobra.Command{
		Use:   "start",
		Short: "Starts the press controller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startController(configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Read pin configuration from the given file.")

	return &cmd
}
