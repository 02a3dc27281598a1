package queries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	application "clawdrop/contexts/claims/intake-service/application"
	"clawdrop/contexts/claims/intake-service/domain/entities"
	"clawdrop/contexts/claims/intake-service/ports"
)

type RegistryQueries struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

// ParseFilter maps a user-supplied filter string onto a ListFilter.
// Empty means all.
func ParseFilter(raw string) (ports.ListFilter, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "", "all":
		return ports.FilterAll, nil
	case "verified":
		return ports.FilterVerified, nil
	case "pending":
		return ports.FilterPending, nil
	case "distributed":
		return ports.FilterDistributed, nil
	default:
		return "", fmt.Errorf("unknown filter %q (want verified, pending, distributed or all)", raw)
	}
}

func (q RegistryQueries) List(ctx context.Context, filter ports.ListFilter) ([]entities.Submission, error) {
	return q.Repository.ListSubmissions(ctx, filter)
}

// RegistryStats summarizes the whole registry for the list surface.
// Expired counts the pending submissions whose verification window has
// already closed, so stale claims are visible to operators.
type RegistryStats struct {
	Total             int
	Verified          int
	Pending           int
	Expired           int
	Distributed       int
	TokensCommitted   int
	TokensDistributed int
}

func (q RegistryQueries) Stats(ctx context.Context) (RegistryStats, error) {
	items, err := q.Repository.ListSubmissions(ctx, ports.FilterAll)
	if err != nil {
		return RegistryStats{}, err
	}
	now := q.Clock.Now()
	stats := RegistryStats{Total: len(items)}
	for _, item := range items {
		stats.TokensCommitted += item.TokenAmount
		if item.Verified() {
			stats.Verified++
		} else {
			stats.Pending++
			if item.TokenExpired(now) {
				stats.Expired++
			}
		}
		if item.Distributed() {
			stats.Distributed++
			stats.TokensDistributed += item.TokenAmount
		}
	}
	application.ResolveLogger(q.Logger).Debug("registry stats computed",
		"event", "registry_stats_computed",
		"module", "claims/intake-service",
		"layer", "application",
		"total", stats.Total,
	)
	return stats, nil
}
