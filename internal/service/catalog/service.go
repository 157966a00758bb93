package catalog

import (
	"context"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/logx"
)

// Status tracks where an aggregate fetch stands.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// UnavailableMessage is the only failure text exposed for aggregate fetches.
// The underlying cause is logged by the gateway, never shown.
const UnavailableMessage = "products are unavailable right now"

// Fetcher is the slice of the gateway the aggregator needs.
type Fetcher interface {
	FetchCategory(ctx context.Context, slug string) ([]domain.Product, error)
}

// Service aggregates per-category product lists into one deduplicated view
// and tracks the request state of the latest aggregate fetch.
type Service struct {
	fetcher Fetcher

	mu     sync.Mutex
	gen    uint64
	status Status
	items  []domain.Product
	errMsg string
}

func New(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher, status: StatusIdle}
}

// Snapshot is the observable aggregate state. Empty is only set for a
// successful fetch that yielded zero items; a failed fetch is never Empty.
type Snapshot struct {
	Status Status           `json:"status"`
	Items  []domain.Product `json:"items"`
	Error  string           `json:"error,omitempty"`
	Empty  bool             `json:"empty"`
}

// Load fetches every slug in order, merges the results and deduplicates
// them by product ID with last-seen-wins. The fetch is all-or-nothing: the
// first failing slug fails the whole operation and no partial list is kept.
// A Load that has been superseded by a newer one commits nothing.
func (s *Service) Load(ctx context.Context, slugs []string) ([]domain.Product, error) {
	gen := s.begin()

	var merged []domain.Product
	for _, slug := range slugs {
		products, err := s.fetcher.FetchCategory(ctx, slug)
		if err != nil {
			logx.Warn().Str("slug", slug).Msg("aggregate fetch failed")
			s.commit(gen, StatusFailed, nil, UnavailableMessage)
			return nil, domain.ErrDataUnavailable
		}
		merged = append(merged, products...)
	}

	items := dedupe(merged)
	s.commit(gen, StatusSucceeded, items, "")
	return items, nil
}

// Snapshot returns a copy of the current aggregate state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.Product, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Status: s.status,
		Items:  items,
		Error:  s.errMsg,
		Empty:  s.status == StatusSucceeded && len(s.items) == 0,
	}
}

// begin marks a new fetch generation; any fetch still in flight from an
// earlier generation is superseded from this point on.
func (s *Service) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.status = StatusLoading
	return s.gen
}

// commit applies a terminal state unless a newer Load began since gen;
// a stale result must never overwrite newer state.
func (s *Service) commit(gen uint64, status Status, items []domain.Product, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		logx.Debug().Uint64("gen", gen).Msg("stale aggregate result discarded")
		return
	}
	s.status = status
	s.items = items
	s.errMsg = errMsg
}

// dedupe collapses duplicate product IDs keeping the last-seen instance at
// the first-seen position.
func dedupe(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	at := make(map[int]int, len(products))
	for _, p := range products {
		if i, seen := at[p.ID]; seen {
			out[i] = p
			continue
		}
		at[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}
