package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gstpro/internal/config"
	"gstpro/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "gstcli",
	Short: "gstcli - GST invoicing from the command line",
	Long: `gstcli manages GST invoices: tax computation, PDF rendering, and
NIC e-invoice JSON exchange against the configured PostgreSQL database.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; the environment may be set directly.
		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger.Setup(cfg.Log)
		appConfig = cfg
		return nil
	},
}

// appConfig is populated before any subcommand runs.
var appConfig *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
