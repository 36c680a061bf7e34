package main

import (
	"github.com/spf13/cobra"

	"quoterelay/internal/app"
	"quoterelay/internal/config"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP relay",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		return app.Run(cfg)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", config.DefaultPath, "Path to YAML config file")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides PORT and config file)")
	rootCmd.AddCommand(serveCmd)
}
