package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/orangeplan/user-management/internal/core/ports"
)

const (
	auditKey = "audit:auth"
	// auditCap bounds the trail; older entries fall off. Simple append
	// logging, no durability guarantees.
	auditCap = 10_000
)

// AuditTrail is a Redis-backed append-only log of auth events.
// Entries are JSON, newest first, capped at auditCap.
type AuditTrail struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewAuditTrail creates an AuditTrail wrapping the given Redis client.
func NewAuditTrail(client *redis.Client, log zerolog.Logger) *AuditTrail {
	return &AuditTrail{client: client, log: log}
}

// Record appends an event. Failures are logged, never propagated: the audit
// trail must not fail the request it observes.
func (a *AuditTrail) Record(ctx context.Context, event ports.AuditEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		a.log.Error().Err(err).Msg("audit: marshal event")
		return
	}

	pipe := a.client.TxPipeline()
	pipe.LPush(ctx, auditKey, payload)
	pipe.LTrim(ctx, auditKey, 0, auditCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		a.log.Error().Err(err).Str("action", event.Action).Msg("audit: append failed")
	}
}

// Recent returns the n most recent events, newest first.
func (a *AuditTrail) Recent(ctx context.Context, n int64) ([]ports.AuditEvent, error) {
	raw, err := a.client.LRange(ctx, auditKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	events := make([]ports.AuditEvent, 0, len(raw))
	for _, r := range raw {
		var evt ports.AuditEvent
		if err := json.Unmarshal([]byte(r), &evt); err != nil {
			continue
		}
		events = append(events, evt)
	}
	return events, nil
}
