package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/gateway"
	"storefront/internal/logx"
)

// Store owns the session state. The process starts logged-out and the state
// only moves through Login and Logout; consumers read it via Current.
type Store struct {
	auth gateway.Authenticator

	mu       sync.Mutex
	loggedIn bool
	profile  *domain.Profile
	token    string
}

func New(auth gateway.Authenticator) *Store {
	return &Store{auth: auth}
}

// LoginResult carries what the presentation layer needs after a login.
type LoginResult struct {
	Token   string         `json:"token"`
	Profile domain.Profile `json:"profile"`
}

// Login verifies the credentials through the authenticator and, on success,
// stores the profile and issues an opaque session token. A failed login
// leaves the prior state untouched.
func (s *Store) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	profile, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.loggedIn = true
	s.profile = profile
	s.token = token
	s.mu.Unlock()

	logx.Info().Str("username", profile.Username).Msg("session opened")
	return &LoginResult{Token: token, Profile: *profile}, nil
}

// Logout resets the store to logged-out regardless of prior state.
func (s *Store) Logout() {
	s.mu.Lock()
	s.loggedIn = false
	s.profile = nil
	s.token = ""
	s.mu.Unlock()
}

// Current returns a read-only view of the session.
func (s *Store) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := domain.Session{LoggedIn: s.loggedIn}
	if s.profile != nil {
		profile := *s.profile
		sess.Profile = &profile
	}
	return sess
}

// Authorize reports whether the presented token matches the open session.
func (s *Store) Authorize(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn && token != "" && token == s.token
}
