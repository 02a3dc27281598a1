package http

import (
	"bytes"
	"encoding/json"
)

// FlexBool accepts JSON true/false as well as the strings "true"/"false",
// which browser form serializers produce for the newsletter opt-in.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case `"true"`, `true`:
		*b = true
		return nil
	case `"false"`, `false`, `null`, `""`:
		*b = false
		return nil
	}
	var value bool
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return err
	}
	*b = FlexBool(value)
	return nil
}

type SubmitRequest struct {
	Email          string   `json:"email"`
	Wallet         string   `json:"wallet"`
	EntityType     string   `json:"entityType"`
	MoltbookHandle string   `json:"moltbookHandle,omitempty"`
	GithubRepo     string   `json:"githubRepo,omitempty"`
	RedditHandle   string   `json:"redditHandle,omitempty"`
	Description    string   `json:"description,omitempty"`
	Newsletter     FlexBool `json:"newsletter,omitempty"`
}

type SubmitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
}

type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type SubmissionDTO struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Wallet        string `json:"wallet"`
	EntityType    string `json:"entityType"`
	TokenAmount   int    `json:"tokenAmount"`
	AgentVerified bool   `json:"agentVerified"`
	SubmittedAt   string `json:"submittedAt"`
	VerifiedAt    string `json:"verifiedAt,omitempty"`
	DistributedAt string `json:"distributedAt,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

type ListResponse struct {
	Success bool            `json:"success"`
	Items   []SubmissionDTO `json:"items"`
	Stats   StatsDTO        `json:"stats"`
}

type StatsDTO struct {
	Total             int `json:"total"`
	Verified          int `json:"verified"`
	Pending           int `json:"pending"`
	Expired           int `json:"expired"`
	Distributed       int `json:"distributed"`
	TokensCommitted   int `json:"tokensCommitted"`
	TokensDistributed int `json:"tokensDistributed"`
}
