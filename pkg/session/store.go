package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mchmarny/hrsite/pkg/menu"
	"github.com/mchmarny/hrsite/pkg/metric"
)

const (
	// CookieName carries the session ID.
	CookieName = "hrsite_session"

	// DefaultTTL is how long an idle session keeps its menu state.
	DefaultTTL = 30 * time.Minute

	// DefaultSweep is how often expired sessions are removed.
	DefaultSweep = time.Minute
)

// Trees are the static menus every session mounts.
type Trees struct {
	Nav       *menu.Menu
	Countries *menu.Menu
}

// Store keeps sessions in memory, keyed by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	trees    Trees
	ttl      time.Duration
	sweep    time.Duration
	now      func() time.Time
	observer menu.Observer
	limit    rate.Limit
	burst    int
	secure   bool
	active   *metric.Gauge
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the idle lifetime of a session.
func WithTTL(d time.Duration) Option {
	return func(st *Store) { st.ttl = d }
}

// WithSweepInterval sets how often Run removes expired sessions.
func WithSweepInterval(d time.Duration) Option {
	return func(st *Store) { st.sweep = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// WithObserver attaches an observer to every controller created by the store.
func WithObserver(o menu.Observer) Option {
	return func(st *Store) { st.observer = o }
}

// WithFormRate limits form submissions per session to perMinute with burst.
func WithFormRate(perMinute, burst int) Option {
	return func(st *Store) {
		if perMinute > 0 {
			st.limit = rate.Every(time.Minute / time.Duration(perMinute))
		}
		st.burst = burst
	}
}

// WithActiveGauge reports the number of live sessions.
func WithActiveGauge(g *metric.Gauge) Option {
	return func(st *Store) { st.active = g }
}

// WithSecureCookie marks the session cookie Secure, for TLS deployments.
func WithSecureCookie() Option {
	return func(st *Store) { st.secure = true }
}

// NewStore creates an empty store.
func NewStore(trees Trees, opts ...Option) *Store {
	st := &Store{
		sessions: make(map[string]*Session),
		trees:    trees,
		ttl:      DefaultTTL,
		sweep:    DefaultSweep,
		now:      time.Now,
		limit:    rate.Inf,
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Get returns a live session and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := st.now()
	s.mu.Lock()
	expired := now.Sub(s.lastSeen) > st.ttl
	if !expired {
		s.lastSeen = now
	}
	s.mu.Unlock()

	if expired {
		st.remove(id)
		return nil, false
	}
	return s, true
}

// Create mounts a fresh session with empty menu state.
func (st *Store) Create() *Session {
	var limiter *rate.Limiter
	if st.limit != rate.Inf {
		limiter = rate.NewLimiter(st.limit, st.burst)
	}
	s := newSession(uuid.NewString(), st.trees, st.observer, limiter, st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	n := len(st.sessions)
	st.mu.Unlock()

	st.report(n)
	slog.Debug("session created", "session", s.ID)
	return s
}

// GetOrCreate returns the session for id, creating one when it is unknown
// or expired. The boolean is true when a session was created.
func (st *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

// Len returns the number of stored sessions, expired or not.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	now := st.now()

	st.mu.Lock()
	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		expired := now.Sub(s.lastSeen) > st.ttl
		s.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	n := len(st.sessions)
	st.mu.Unlock()

	st.report(n)
	if removed > 0 {
		slog.Debug("expired sessions removed", "count", removed, "remaining", n)
	}
	return removed
}

// Run sweeps expired sessions until ctx is done.
func (st *Store) Run(ctx context.Context) error {
	ticker := time.NewTicker(st.sweep)
	defer ticker.Stop()

	slog.Info("session sweeper started", "interval", st.sweep, "ttl", st.ttl)
	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return nil
		case <-ticker.C:
			st.Sweep()
		}
	}
}

func (st *Store) remove(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	n := len(st.sessions)
	st.mu.Unlock()
	st.report(n)
}

func (st *Store) report(n int) {
	if st.active != nil {
		st.active.Set(float64(n))
	}
}

type ctxKey struct{}

// NewContext returns a context carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// Middleware attaches the visitor's session to the request context,
// issuing a cookie when a new session is created.
func (st *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(CookieName); err == nil {
			id = c.Value
		}

		s, created := st.GetOrCreate(id)
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    s.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   st.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
	})
}
