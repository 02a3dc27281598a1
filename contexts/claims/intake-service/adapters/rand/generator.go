package randadapter

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	idBytes    = 8
	tokenBytes = 32
	// Transaction ids mimic the length of a base58 Solana signature
	// prefix; they are simulated, not real chain signatures.
	transactionIDLength = 44
)

// Generator derives ids, verification tokens and simulated transaction
// ids from crypto/rand. The hex formats are part of the persisted
// registry contract.
type Generator struct{}

func (Generator) NewID(_ context.Context) (string, error) {
	return randomHex(idBytes)
}

func (Generator) NewToken(_ context.Context) (string, error) {
	return randomHex(tokenBytes)
}

func (Generator) NewTransactionID(_ context.Context) (string, error) {
	raw, err := randomHex(tokenBytes)
	if err != nil {
		return "", err
	}
	return raw[:transactionIDLength], nil
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
