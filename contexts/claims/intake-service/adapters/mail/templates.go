package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"clawdrop/contexts/claims/intake-service/domain/entities"
)

const (
	verificationSubject = "Verify Your CLAW Airdrop Email"
	distributionSubject = "Your CLAW Airdrop Has Been Distributed!"
)

// Message is a rendered outbound email, transport-agnostic.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type verificationData struct {
	IsAgent        bool
	TokenAmount    int
	Wallet         string
	VerifyURL      string
	MoltbookHandle string
	GithubRepo     string
	RedditHandle   string
	ExpiryHours    int
}

type distributionData struct {
	TokenAmount   int
	Wallet        string
	TransactionID string
	SolscanURL    string
	DistributedAt string
}

var verificationText = texttemplate.Must(texttemplate.New("verification_text").Parse(strings.TrimLeft(`
CLAW Airdrop - Email Verification

Hello{{if .IsAgent}} Agent{{end}},

Welcome to the CLAW airdrop! You're eligible for {{.TokenAmount}} CLAW tokens.

Entity Type: {{if .IsAgent}}Autonomous Agent{{else}}Human{{end}}
Wallet Address: {{.Wallet}}

To claim your tokens, verify your email:
{{.VerifyURL}}

This link expires in {{.ExpiryHours}} hours.
{{if .IsAgent}}
Agent verification details on file:
  Moltbook: {{if .MoltbookHandle}}{{.MoltbookHandle}}{{else}}not provided{{end}}
  GitHub: {{if .GithubRepo}}{{.GithubRepo}}{{else}}not provided{{end}}
  Reddit: {{if .RedditHandle}}{{.RedditHandle}}{{else}}not provided{{end}}
Our team will verify your agent identity; this may take 24-48 hours.
{{end}}
Verified recipients receive their CLAW in the next weekly batch
distribution, sent directly to the Solana wallet above.

If you didn't submit this, please ignore this email.

CLAW Team
`, "\n")))

var verificationHTML = htmltemplate.Must(htmltemplate.New("verification_html").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>CLAW Airdrop &mdash; Verify Your Email</h1>
  <p>Hello{{if .IsAgent}} Agent{{end}},</p>
  <p>Welcome to the CLAW airdrop! You're eligible for <strong>{{.TokenAmount}} CLAW tokens</strong>.</p>
  <p>Entity type: <strong>{{if .IsAgent}}Autonomous Agent{{else}}Human{{end}}</strong><br>
     Wallet: <code>{{.Wallet}}</code></p>
  <p><a href="{{.VerifyURL}}">Verify your email</a> or paste this link in your browser:</p>
  <p><code>{{.VerifyURL}}</code></p>
  <p><strong>This link expires in {{.ExpiryHours}} hours.</strong></p>
{{if .IsAgent}}  <h3>Agent verification details</h3>
  <ul>
    <li>Moltbook: {{if .MoltbookHandle}}{{.MoltbookHandle}}{{else}}not provided{{end}}</li>
    <li>GitHub: {{if .GithubRepo}}{{.GithubRepo}}{{else}}not provided{{end}}</li>
    <li>Reddit: {{if .RedditHandle}}{{.RedditHandle}}{{else}}not provided{{end}}</li>
  </ul>
  <p>Our team will verify your agent's authenticity. This may take 24-48 hours.</p>
{{end}}  <p>Verified recipients receive their CLAW in the next weekly batch distribution.</p>
  <p>If you didn't submit this, please ignore this email.</p>
</body>
</html>
`))

var distributionText = texttemplate.Must(texttemplate.New("distribution_text").Parse(strings.TrimLeft(`
CLAW Airdrop - Distribution Confirmation

Your CLAW has been distributed!

Amount: {{.TokenAmount}} CLAW
Wallet: {{.Wallet}}
Transaction: {{.TransactionID}}
Date: {{.DistributedAt}}

View on Solscan:
{{.SolscanURL}}

Check your Solana wallet to confirm receipt. Import the CLAW token if
it's not showing automatically.

CLAW Team
`, "\n")))

var distributionHTML = htmltemplate.Must(htmltemplate.New("distribution_html").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>CLAW Airdrop Distributed</h1>
  <p>Your CLAW has been sent: <strong>+{{.TokenAmount}} CLAW</strong></p>
  <p>Wallet: <code>{{.Wallet}}</code><br>
     Transaction: <code>{{.TransactionID}}</code><br>
     Distributed: {{.DistributedAt}}</p>
  <p><a href="{{.SolscanURL}}">View on Solscan</a></p>
  <p>Check your Solana wallet to confirm receipt of CLAW tokens.</p>
</body>
</html>
`))

// VerifyURL builds the claimant-facing verification link.
func VerifyURL(baseURL, token string) string {
	return fmt.Sprintf("%s/verify?token=%s", strings.TrimRight(baseURL, "/"), token)
}

func composeVerification(submission entities.Submission, baseURL string) (Message, error) {
	data := verificationData{
		IsAgent:        submission.EntityType == entities.EntityTypeAgent,
		TokenAmount:    submission.TokenAmount,
		Wallet:         submission.Wallet,
		VerifyURL:      VerifyURL(baseURL, submission.VerificationToken),
		MoltbookHandle: submission.MoltbookHandle,
		GithubRepo:     submission.GithubRepo,
		RedditHandle:   submission.RedditHandle,
		ExpiryHours:    int(entities.VerificationTTL.Hours()),
	}
	text, html, err := render(verificationText, verificationHTML, data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      submission.Email,
		Subject: verificationSubject,
		Text:    text,
		HTML:    html,
	}, nil
}

func composeDistribution(submission entities.Submission, transactionID string, now time.Time) (Message, error) {
	data := distributionData{
		TokenAmount:   submission.TokenAmount,
		Wallet:        submission.Wallet,
		TransactionID: transactionID,
		SolscanURL:    "https://solscan.io/tx/" + transactionID,
		DistributedAt: now.UTC().Format(time.RFC3339),
	}
	text, html, err := render(distributionText, distributionHTML, data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      submission.Email,
		Subject: distributionSubject,
		Text:    text,
		HTML:    html,
	}, nil
}

func render(text *texttemplate.Template, html *htmltemplate.Template, data any) (string, string, error) {
	var textBuf bytes.Buffer
	if err := text.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("rendering text body: %w", err)
	}
	var htmlBuf bytes.Buffer
	if err := html.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("rendering html body: %w", err)
	}
	return textBuf.String(), htmlBuf.String(), nil
}
