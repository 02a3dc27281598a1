package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clawdrop/internal/app/bootstrap"
)

var rootCmd = &cobra.Command{
	Use:   "clawdrop",
	Short: "CLAW airdrop claim intake and distribution",
	Long: `clawdrop manages the CLAW airdrop registry: claim submissions,
email verification, and batch token distribution.

Examples:
  clawdrop process-submission --email a@b.com --wallet <addr> --type human
  clawdrop verify --token <hex>
  clawdrop distribute            # dry run
  clawdrop distribute --execute  # record the batch and send notices
  clawdrop list --filter verified
  clawdrop server --port 8080`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildApp() (*bootstrap.App, error) {
	return bootstrap.Build()
}
