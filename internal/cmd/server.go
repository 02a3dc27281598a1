package cmd

import (
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the airdrop intake HTTP API",
	RunE:  runServer,
}

var serverPort string

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVar(&serverPort, "port", "", "Listen port (overrides HTTP_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if serverPort != "" {
		return app.ServerOn(serverPort).Start()
	}
	return app.Server().Start()
}
