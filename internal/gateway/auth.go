package gateway

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
)

// LoginConfig configures the simulated credential check
// (LOGIN_USERNAME, LOGIN_PASSWORD, LOGIN_NAME, LOGIN_DELAY).
type LoginConfig struct {
	Username string        `default:"user"`
	Password string        `default:"password"`
	Name     string        `default:"Usuário Teste"`
	Delay    time.Duration `default:"2s"`
}

// New builds the mock authenticator. The accepted password is kept only as
// a bcrypt hash.
func (c LoginConfig) New() (*MockAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &MockAuthenticator{
		username:     c.Username,
		passwordHash: hash,
		profile:      domain.Profile{Username: c.Username, Name: c.Name},
		delay:        c.Delay,
	}, nil
}

// MockAuthenticator stands in for a real auth endpoint: it accepts exactly
// one credential pair after a fixed delay that simulates network latency.
type MockAuthenticator struct {
	username     string
	passwordHash []byte
	profile      domain.Profile
	delay        time.Duration
}

// Login checks the credentials against the configured pair.
func (a *MockAuthenticator) Login(ctx context.Context, username, password string) (*domain.Profile, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(a.delay):
	}

	if username != a.username ||
		bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	profile := a.profile
	return &profile, nil
}
