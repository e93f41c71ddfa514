package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/justestif/go-mindful-moments/internal/emotion"
)

const (
	cookieName = "session_id"
	sessionTTL = 24 * time.Hour
)

// Session is one visitor's state for the lifetime of the process. Each
// session has a single writer (the request handling its owner's action), so
// its fields need no locking of their own.
type Session struct {
	ID        string
	History   History
	Current   *emotion.Category
	Flash     *Flash
	CreatedAt time.Time
}

// Flash is a one-shot notice rendered on the next page load.
type Flash struct {
	Type    string // "success", "error", "warning"
	Message string
}

// ConsumeFlash returns the pending flash, clearing it.
func (s *Session) ConsumeFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}

// Store manages sessions in memory, keyed by a browser cookie. State is
// process-lifetime only; nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates a new in-memory session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the request's session, creating one (and setting the
// cookie) on first visit or after expiry.
func (s *Store) GetOrCreate(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(cookieName); err == nil {
		if session := s.get(cookie.Value); session != nil {
			return session
		}
	}

	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})

	return session
}

// get retrieves a session by ID, treating expired sessions as absent.
func (s *Store) get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if time.Since(session.CreatedAt) > sessionTTL {
		return nil
	}
	return session
}
