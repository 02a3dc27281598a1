package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clawdrop/contexts/claims/intake-service/application/commands"
	"clawdrop/contexts/claims/intake-service/application/workers"
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Run a distribution batch over verified, undistributed claims",
	Long: `Run a distribution batch over every verified claim that has not yet
received tokens. Without --execute this is a dry run: it prints the
intended transfers and changes nothing.`,
	RunE: runDistribute,
}

var distributeExecute bool

func init() {
	rootCmd.AddCommand(distributeCmd)

	distributeCmd.Flags().BoolVar(&distributeExecute, "execute", false, "Record the batch and send notification emails")
}

func runDistribute(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	job := workers.DistributionJob{
		Commands: app.Intake.Distribute,
		DryRun:   !distributeExecute,
		Logger:   app.Logger,
	}
	rows, err := job.RunOnce(cmd.Context())
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No verified submissions pending distribution.")
		return nil
	}

	total := 0
	for _, row := range rows {
		total += row.Amount
		line := fmt.Sprintf("[%s] %s  %s  %d CLAW", row.Status, row.Email, row.Wallet, row.Amount)
		if row.TransactionID != "" {
			line += "  tx=" + row.TransactionID
		}
		if row.Status == commands.DistributionStatusSent && !row.EmailSent {
			line += "  (email failed)"
		}
		fmt.Println(line)
	}
	fmt.Printf("%d submission(s), %d CLAW total\n", len(rows), total)
	if !distributeExecute {
		fmt.Println("Dry run only. Re-run with --execute to record the batch.")
	}
	return nil
}
