// Package store holds the short-lived server state: login sessions and
// wizard drafts. Both are TTL'd key/value records behind one port so
// deployments can pick Redis (shared) or in-memory (single process).
package store

import (
	"context"
	"time"

	"rentacar/internal/domain/booking"
	"rentacar/internal/domain/user"

	"github.com/google/uuid"
)

// Session is one authenticated browser session. Token carries the upstream
// provider's access token when it issued one.
type Session struct {
	ID        uuid.UUID `json:"id"`
	User      user.User `json:"user"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type SessionStore interface {
	PutSession(ctx context.Context, s Session) error
	// GetSession reports a NOT_FOUND kind for unknown or expired ids.
	GetSession(ctx context.Context, id uuid.UUID) (Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

type DraftStore interface {
	PutDraft(ctx context.Context, d *booking.Draft) error
	// GetDraft reports a NOT_FOUND kind for unknown or expired ids.
	GetDraft(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
}

// Store is the combined port the bootstrap wires; both implementations
// satisfy it.
type Store interface {
	SessionStore
	DraftStore
}
