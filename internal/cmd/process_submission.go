package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clawdrop/contexts/claims/intake-service/application/commands"
)

var processSubmissionCmd = &cobra.Command{
	Use:   "process-submission",
	Short: "Record a new airdrop claim and send its verification email",
	RunE:  runProcessSubmission,
}

var (
	processEmail       string
	processWallet      string
	processEntityType  string
	processMoltbook    string
	processGithubRepo  string
	processReddit      string
	processDescription string
	processNewsletter  bool
)

func init() {
	rootCmd.AddCommand(processSubmissionCmd)

	processSubmissionCmd.Flags().StringVar(&processEmail, "email", "", "Claimant email address")
	processSubmissionCmd.Flags().StringVar(&processWallet, "wallet", "", "Solana wallet address")
	processSubmissionCmd.Flags().StringVar(&processEntityType, "type", "human", "Entity type: human or agent")
	processSubmissionCmd.Flags().StringVar(&processMoltbook, "moltbook", "", "Moltbook handle (required for agents)")
	processSubmissionCmd.Flags().StringVar(&processGithubRepo, "github-repo", "", "GitHub repository URL (required for agents)")
	processSubmissionCmd.Flags().StringVar(&processReddit, "reddit", "", "Reddit handle")
	processSubmissionCmd.Flags().StringVar(&processDescription, "description", "", "Free-form description")
	processSubmissionCmd.Flags().BoolVar(&processNewsletter, "newsletter", true, "Subscribe to the newsletter")

	_ = processSubmissionCmd.MarkFlagRequired("email")
	_ = processSubmissionCmd.MarkFlagRequired("wallet")
}

func runProcessSubmission(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.Intake.Process.Execute(cmd.Context(), commands.ProcessSubmissionCommand{
		Email:          processEmail,
		Wallet:         processWallet,
		EntityType:     processEntityType,
		MoltbookHandle: processMoltbook,
		GithubRepo:     processGithubRepo,
		RedditHandle:   processReddit,
		Description:    processDescription,
		Newsletter:     processNewsletter,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Submission recorded: %s\n", result.Submission.ID)
	fmt.Printf("  email:        %s\n", result.Submission.Email)
	fmt.Printf("  entity type:  %s\n", result.Submission.EntityType)
	fmt.Printf("  token amount: %d CLAW\n", result.Submission.TokenAmount)
	if result.EmailDispatched {
		fmt.Println("Verification email sent.")
	} else {
		fmt.Println("Verification email could NOT be sent; the claim is saved and can be re-verified later.")
	}
	return nil
}
