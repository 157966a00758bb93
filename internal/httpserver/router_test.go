package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/gateway"
	catalogsvc "storefront/internal/service/catalog"
	sessionsvc "storefront/internal/service/session"
)

type stubFetcher struct {
	responses map[string][]domain.Product
	errs      map[string]error
}

func (s *stubFetcher) FetchCategory(_ context.Context, slug string) ([]domain.Product, error) {
	if err := s.errs[slug]; err != nil {
		return nil, err
	}
	return s.responses[slug], nil
}

type stubProducts struct {
	product *domain.Product
	err     error
	pingErr error
}

func (s *stubProducts) FetchProduct(_ context.Context, _ int) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProducts) Ping(_ context.Context) error {
	return s.pingErr
}

func newTestRouter(t *testing.T, fetcher *stubFetcher, products *stubProducts) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth, err := gateway.LoginConfig{Username: "user", Password: "password", Name: "Usuário Teste"}.New()
	if err != nil {
		t.Fatalf("build authenticator: %v", err)
	}
	router, err := buildRouter(Deps{
		Catalog:  catalogsvc.New(fetcher),
		Session:  sessionsvc.New(auth),
		Products: products,
	}, []string{"*"})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doJSON(router *gin.Engine, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	router := newTestRouter(t, &stubFetcher{}, &stubProducts{})

	rec := doJSON(router, http.MethodPost, "/login", `{"username":"user","password":"password"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res sessionsvc.LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if res.Token == "" || res.Profile.Name != "Usuário Teste" {
		t.Fatalf("unexpected login result %+v", res)
	}

	rec = doJSON(router, http.MethodPost, "/login", `{"username":"user","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doJSON(router, http.MethodPost, "/login", `{"username":"user"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rec.Code)
	}
}

func TestLogout_RequiresSessionToken(t *testing.T) {
	router := newTestRouter(t, &stubFetcher{}, &stubProducts{})

	rec := doJSON(router, http.MethodPost, "/logout", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doJSON(router, http.MethodPost, "/login", `{"username":"user","password":"password"}`, nil)
	var res sessionsvc.LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	header := http.Header{"Authorization": []string{"Bearer " + res.Token}}
	rec = doJSON(router, http.MethodPost, "/logout", "", header)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doJSON(router, http.MethodGet, "/session", "", nil)
	var sess domain.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if sess.LoggedIn || sess.Profile != nil {
		t.Fatalf("expected logged-out session, got %+v", sess)
	}
}

func TestCatalog_AggregateFetch(t *testing.T) {
	fetcher := &stubFetcher{responses: map[string][]domain.Product{
		"mens-shirts": {{ID: 1, Title: "Shirt"}},
		"mens-shoes":  {{ID: 2, Title: "Shoe"}},
	}}
	router := newTestRouter(t, fetcher, &stubProducts{})

	rec := doJSON(router, http.MethodGet, "/catalog?categories=mens-shirts,mens-shoes", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var snap catalogsvc.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Status != catalogsvc.StatusSucceeded || len(snap.Items) != 2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	rec = doJSON(router, http.MethodGet, "/catalog", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without categories, got %d", rec.Code)
	}
}

func TestCatalog_FailureCollapsesToError(t *testing.T) {
	fetcher := &stubFetcher{
		responses: map[string][]domain.Product{"mens-shirts": {{ID: 1, Title: "Shirt"}}},
		errs:      map[string]error{"mens-shoes": domain.ErrDataUnavailable},
	}
	router := newTestRouter(t, fetcher, &stubProducts{})

	rec := doJSON(router, http.MethodGet, "/catalog?categories=mens-shirts,mens-shoes", "", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	// the aggregate state is an error, not a partial list
	rec = doJSON(router, http.MethodGet, "/catalog/state", "", nil)
	var snap catalogsvc.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Status != catalogsvc.StatusFailed || len(snap.Items) != 0 {
		t.Fatalf("expected failed state without items, got %+v", snap)
	}
}

func TestProductDetail(t *testing.T) {
	router := newTestRouter(t, &stubFetcher{}, &stubProducts{
		product: &domain.Product{ID: 7, Title: "Chair", Price: 50},
	})

	rec := doJSON(router, http.MethodGet, "/products/7", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var p domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if p.ID != 7 || p.Title != "Chair" {
		t.Fatalf("unexpected product %+v", p)
	}

	rec = doJSON(router, http.MethodGet, "/products/nope", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rec.Code)
	}

	router = newTestRouter(t, &stubFetcher{}, &stubProducts{err: domain.ErrNotFound})
	rec = doJSON(router, http.MethodGet, "/products/99999", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	router = newTestRouter(t, &stubFetcher{}, &stubProducts{err: domain.ErrDataUnavailable})
	rec = doJSON(router, http.MethodGet, "/products/7", "", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestReadyz_ReportsRemoteAPIHealth(t *testing.T) {
	router := newTestRouter(t, &stubFetcher{}, &stubProducts{})
	rec := doJSON(router, http.MethodGet, "/readyz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	router = newTestRouter(t, &stubFetcher{}, &stubProducts{pingErr: domain.ErrDataUnavailable})
	rec = doJSON(router, http.MethodGet, "/readyz", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
