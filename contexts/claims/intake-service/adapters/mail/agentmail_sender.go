package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AgentmailSender posts messages to the Agentmail HTTP API.
type AgentmailSender struct {
	client *http.Client
	apiURL string
	apiKey string
	from   string
}

func NewAgentmailSender(apiURL, apiKey, from string) *AgentmailSender {
	return &AgentmailSender{
		client: &http.Client{Timeout: 15 * time.Second},
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		from:   from,
	}
}

type agentmailRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type agentmailError struct {
	Error string `json:"error"`
}

func (s *AgentmailSender) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(agentmailRequest{
		To:      msg.To,
		From:    s.from,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("encoding agentmail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building agentmail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("agentmail send to %s: %w", msg.To, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr agentmailError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("agentmail error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("agentmail error: unexpected status %d", resp.StatusCode)
	}
	return nil
}
