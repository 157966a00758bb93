package gateway

import (
	"context"

	"storefront/internal/domain"
)

// Catalog is the outbound product API as consumed by the services. Failures
// are always translated into domain errors; callers never see transport
// detail.
type Catalog interface {
	FetchCategory(ctx context.Context, slug string) ([]domain.Product, error)
	FetchProduct(ctx context.Context, id int) (*domain.Product, error)
}

// Authenticator verifies credentials and yields the user profile. The
// default implementation is a simulation; a real credential backend must be
// substitutable without touching callers.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*domain.Profile, error)
}
