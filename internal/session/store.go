package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store keeps sessions in memory, keyed by id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*State
	defaults Defaults
	idle     time.Duration
	now      func() time.Time
}

// NewStore returns an empty store. Sessions unused for longer than idle are
// removed by Sweep; idle <= 0 disables expiry.
func NewStore(d Defaults, idle time.Duration) (*Store, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("session defaults need at least one slide")
	}
	return &Store{
		sessions: make(map[string]*State),
		defaults: d,
		idle:     idle,
		now:      time.Now,
	}, nil
}

// Create starts a new session with a random id.
func (st *Store) Create() *State {
	now := st.now()
	s, err := newState(uuid.NewString(), st.defaults, now)
	if err != nil {
		// NewStore rejects defaults that newState cannot build.
		panic(err)
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the live session with id and marks it as used.
func (st *Store) Get(id string) (*State, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := st.now()
	s.mu.Lock()
	expired := st.idle > 0 && now.Sub(s.lastSeen) > st.idle
	if !expired {
		s.lastSeen = now
	}
	s.mu.Unlock()
	if expired {
		st.Delete(id)
		return nil, false
	}
	return s, true
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of tracked sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (st *Store) Sweep() int {
	if st.idle <= 0 {
		return 0
	}
	now := st.now()
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastSeen) > st.idle
		s.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is cancelled.
func (st *Store) Run(ctx context.Context, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 || st.idle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				logger.Debug("expired sessions swept", zap.Int("removed", n), zap.Int("remaining", st.Len()))
			}
		}
	}
}
