package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a claim using its emailed token",
	RunE:  runVerify,
}

var verifyToken string

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyToken, "token", "", "Verification token from the email link")
	_ = verifyCmd.MarkFlagRequired("token")
}

func runVerify(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	message, err := app.Intake.Verify.Execute(cmd.Context(), verifyToken)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}
