package main

import (
	"github.com/spf13/cobra"

	"github.com/AlviRownok/Chess-Knight-Paths/config"
)

var (
	cfgFile string
	verbose bool
	cfg     config.Config
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "knightpaths",
		Short:        "Find and visualize every shortest knight path between two squares",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Default()
			if cfgFile != "" {
				loaded, err := config.Load(cfgFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if verbose {
				cfg.Verbose = true
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a knightpaths.yml config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(findCmd(), serveCmd())
	return root
}

func Execute() error {
	return rootCmd().Execute()
}
