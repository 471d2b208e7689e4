package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/bacola-storefront/internal/carousel"
	"github.com/angelmondragon/bacola-storefront/internal/cart"
	"github.com/angelmondragon/bacola-storefront/internal/catalog"
	"github.com/angelmondragon/bacola-storefront/internal/wishlist"
	"github.com/angelmondragon/bacola-storefront/pkg/config"
	"github.com/angelmondragon/bacola-storefront/pkg/kv"
	"github.com/angelmondragon/bacola-storefront/pkg/metrics"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080"},
		Catalog: config.CatalogConfig{
			DefaultPriceMin: 0,
			DefaultPriceMax: 50,
			DefaultPageSize: 12,
			MaxPageSize:     48,
		},
		Session:  config.SessionConfig{CookieName: "bacola_session", TTL: time.Hour},
		Carousel: config.CarouselConfig{AutoPlay: true, Interval: 5 * time.Second},
	}

	cat := catalog.Default()
	store := kv.NewMemory()

	cartService, err := cart.NewService(cart.ServiceParams{Repo: cart.NewRepository(store), Catalog: cat})
	if err != nil {
		t.Fatalf("build cart service: %v", err)
	}
	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{Repo: wishlist.NewRepository(store), Catalog: cat})
	if err != nil {
		t.Fatalf("build wishlist service: %v", err)
	}

	rotator := carousel.NewRotator(carousel.DefaultSlides(), cfg.Carousel.Interval)

	return NewRouter(cfg, nil, nil, metrics.NewHTTPMetrics(), cat, rotator, cartService, wishlistService)
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == "bacola_session" {
			return cookie
		}
	}
	t.Fatal("session cookie not issued")
	return nil
}

func TestRouterCatalogListing(t *testing.T) {
	router := testRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/catalog?sort=price_low&per_page=5", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Items []catalog.Product `json:"items"`
			Total int               `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 5 {
		t.Fatalf("expected 5 items on page, got %d", len(envelope.Data.Items))
	}
	if envelope.Data.Total != catalog.Default().Len() {
		t.Fatalf("expected total %d, got %d", catalog.Default().Len(), envelope.Data.Total)
	}
}

func TestRouterCartFlowSharesSessionCookie(t *testing.T) {
	router := testRouter(t)

	addResp := httptest.NewRecorder()
	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"1","quantity":2}`))
	router.ServeHTTP(addResp, addReq)
	if addResp.Code != http.StatusOK {
		t.Fatalf("add: expected 200 got %d: %s", addResp.Code, addResp.Body.String())
	}
	cookie := sessionCookie(t, addResp)

	fetchResp := httptest.NewRecorder()
	fetchReq := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	fetchReq.AddCookie(cookie)
	router.ServeHTTP(fetchResp, fetchReq)
	if fetchResp.Code != http.StatusOK {
		t.Fatalf("fetch: expected 200 got %d", fetchResp.Code)
	}
	var envelope struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(fetchResp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 2 {
		t.Fatalf("expected count 2 for returning session, got %d", envelope.Data.Count)
	}
}

func TestRouterCartIsolationBetweenSessions(t *testing.T) {
	router := testRouter(t)

	addResp := httptest.NewRecorder()
	router.ServeHTTP(addResp, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"1","quantity":2}`)))
	if addResp.Code != http.StatusOK {
		t.Fatalf("add: expected 200 got %d", addResp.Code)
	}

	// No cookie: a fresh session sees an empty cart.
	fetchResp := httptest.NewRecorder()
	router.ServeHTTP(fetchResp, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	var envelope struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(fetchResp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 0 {
		t.Fatalf("expected empty cart for new session, got count %d", envelope.Data.Count)
	}
}

func TestRouterWishlistToggle(t *testing.T) {
	router := testRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle",
		strings.NewReader(`{"product_id":"3"}`)))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data["liked"] {
		t.Fatal("expected product to be liked after first toggle")
	}
}

func TestRouterAuxiliaryEndpoints(t *testing.T) {
	router := testRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/metrics", "/api/v1/carousel", "/api/v1/catalog/facets"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/search?q=juice", nil))
	if resp.Code != http.StatusFound {
		t.Fatalf("search: expected 302 got %d", resp.Code)
	}
}
