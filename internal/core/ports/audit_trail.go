package ports

import (
	"context"
	"time"
)

// AuditEvent records one observable auth outcome. It never carries plaintext
// passwords or hash material.
type AuditEvent struct {
	Action   string    `json:"action"`
	Username string    `json:"username"`
	Outcome  string    `json:"outcome"`
	At       time.Time `json:"at"`
}

// AuditTrail is an append-only sink for auth events. Recording is
// best-effort; implementations must not fail the request on sink errors.
type AuditTrail interface {
	Record(ctx context.Context, event AuditEvent)
}

// AuditReader reads back recorded events, newest first.
type AuditReader interface {
	Recent(ctx context.Context, n int64) ([]AuditEvent, error)
}
