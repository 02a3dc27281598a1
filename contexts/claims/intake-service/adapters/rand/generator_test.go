package randadapter

import (
	"context"
	"encoding/hex"
	"testing"
)

func TestGeneratorFormats(t *testing.T) {
	gen := Generator{}

	id, err := gen.NewID(context.Background())
	if err != nil {
		t.Fatalf("NewID failed: %v", err)
	}
	if len(id) != 16 {
		t.Fatalf("id length %d, want 16 hex chars", len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Fatalf("id is not hex: %q", id)
	}

	token, err := gen.NewToken(context.Background())
	if err != nil {
		t.Fatalf("NewToken failed: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("token length %d, want 64 hex chars", len(token))
	}

	tx, err := gen.NewTransactionID(context.Background())
	if err != nil {
		t.Fatalf("NewTransactionID failed: %v", err)
	}
	if len(tx) != 44 {
		t.Fatalf("transaction id length %d, want 44", len(tx))
	}
}

func TestGeneratorUniqueness(t *testing.T) {
	gen := Generator{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := gen.NewToken(context.Background())
		if err != nil {
			t.Fatalf("NewToken failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[token] = true
	}
}
