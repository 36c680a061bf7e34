// @title       Quote Relay API
// @version     1.0
// @description Relays job-number quote lookups and deal amount updates to HubSpot.
// @BasePath    /
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quoterelay",
	Short: "HubSpot quote relay",
	Long:  "quoterelay exposes job-number quote lookups and deal amount updates backed by the HubSpot CRM.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
