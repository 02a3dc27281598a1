package messaging

import (
	"context"
	"testing"
	"time"

	"clawdrop/internal/shared/events"
)

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus(nil)
	ch := bus.Subscribe("airdrop.submission.created", 4)

	event := events.New("airdrop.submission.created", "submission", "sub-1", time.Now(), nil)
	if err := bus.Publish(context.Background(), "airdrop.submission.created", event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case got := <-ch:
		if got.EntityID != "sub-1" {
			t.Fatalf("delivered entity %q, want sub-1", got.EntityID)
		}
	default:
		t.Fatal("event not delivered")
	}
}

func TestBusTopicIsolation(t *testing.T) {
	bus := NewBus(nil)
	other := bus.Subscribe("airdrop.submission.verified", 4)

	event := events.New("airdrop.submission.created", "submission", "sub-1", time.Now(), nil)
	if err := bus.Publish(context.Background(), "airdrop.submission.created", event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case got := <-other:
		t.Fatalf("wrong-topic delivery: %+v", got)
	default:
	}
}

func TestBusDropsWhenSubscriberFull(t *testing.T) {
	bus := NewBus(nil)
	ch := bus.Subscribe("airdrop.distribution.completed", 1)

	for i := 0; i < 3; i++ {
		event := events.New("airdrop.distribution.completed", "distribution", "batch-1", time.Now(), nil)
		if err := bus.Publish(context.Background(), "airdrop.distribution.completed", event); err != nil {
			t.Fatalf("publish %d failed: %v", i, err)
		}
	}

	// Exactly one event fits the buffer; overflow is dropped, not blocking.
	count := 0
	for {
		select {
		case <-ch:
			count++
			continue
		default:
		}
		break
	}
	if count != 1 {
		t.Fatalf("delivered %d events, want 1", count)
	}
}
