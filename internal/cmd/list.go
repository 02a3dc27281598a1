package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clawdrop/contexts/claims/intake-service/application/queries"
	"clawdrop/contexts/claims/intake-service/domain/entities"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registry submissions with summary stats",
	RunE:  runList,
}

var listFilter string

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFilter, "filter", "all", "verified, pending, distributed or all")
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := queries.ParseFilter(listFilter)
	if err != nil {
		return err
	}

	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	items, err := app.Intake.Queries.List(cmd.Context(), filter)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Println(formatSubmissionLine(item))
	}

	stats, err := app.Intake.Queries.Stats(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("\nTotal: %d  Verified: %d  Pending: %d (%d expired)  Distributed: %d\n",
		stats.Total, stats.Verified, stats.Pending, stats.Expired, stats.Distributed)
	fmt.Printf("Tokens committed: %d CLAW  Tokens distributed: %d CLAW\n",
		stats.TokensCommitted, stats.TokensDistributed)
	return nil
}

func formatSubmissionLine(item entities.Submission) string {
	status := "pending"
	if item.Distributed() {
		status = "distributed"
	} else if item.Verified() {
		status = "verified"
	}
	return fmt.Sprintf("%s  %-11s  %s  %s  %d CLAW  %s",
		item.ID,
		status,
		item.Email,
		item.Wallet,
		item.TokenAmount,
		item.SubmittedAt.Format(time.RFC3339),
	)
}
