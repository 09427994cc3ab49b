// Package session stores completed analysis results so clients can fetch
// them again without re-uploading the resume.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultTTL is how long a stored session stays retrievable when no TTL
// is configured.
const DefaultTTL = time.Hour

// Session is one completed analysis, keyed by a random UUID handed back
// to the client.
type Session struct {
	ID        uuid.UUID             `json:"id"`
	Filename  string                `json:"filename,omitempty"`
	Result    *types.AnalysisResult `json:"result"`
	CreatedAt time.Time             `json:"created_at"`
	ExpiresAt time.Time             `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given
// instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists analysis sessions. Get returns (nil, nil) when the
// session does not exist or has expired.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// New builds a session around an analysis result with a fresh UUID and
// the given lifetime.
func New(filename string, result *types.AnalysisResult, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		Filename:  filename,
		Result:    result,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
