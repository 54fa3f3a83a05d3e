package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstlab/observability"
)

// ErrSessionNotFound is returned for an unknown or expired session ID.
var ErrSessionNotFound = errors.New("session: not found")

// Registry holds independent sessions keyed by UUID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limits   Limits
	log      *zap.Logger
	now      func() time.Time
}

// NewRegistry returns an empty registry whose sessions use limits and log.
func NewRegistry(limits Limits, log *zap.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		limits:   limits,
		log:      observability.OrNop(log),
		now:      time.Now,
	}
}

// Create starts a new session and returns it.
func (r *Registry) Create() *Session {
	id := uuid.NewString()
	s := New(WithID(id), WithLimits(r.limits), WithLogger(r.log), WithClock(r.now))

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	r.log.Info("session created", zap.String("session", id))

	return s
}

// Get returns the session for id. IDs that are not UUIDs are never found.
func (r *Registry) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	return s, nil
}

// Delete drops the session for id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	r.log.Info("session deleted", zap.String("session", id))

	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var expired []string
	for id, s := range r.sessions {
		if s.LastUsed().Before(cutoff) {
			expired = append(expired, id)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	if len(expired) > 0 {
		r.log.Info("sessions expired", zap.Int("count", len(expired)), zap.Strings("ids", expired))
	}

	return len(expired)
}
