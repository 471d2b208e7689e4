package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/bacola-storefront/internal/catalog"
	"github.com/angelmondragon/bacola-storefront/pkg/config"
	"github.com/angelmondragon/bacola-storefront/pkg/enums"
)

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{
		DefaultPriceMin: 0,
		DefaultPriceMax: 50,
		DefaultPageSize: 12,
		MaxPageSize:     48,
	}
}

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Product{
		{ID: "1", Title: "Marinated Meatballs", Price: "$7.25", Stock: enums.StockStatusInStock, Rating: 4.0, Category: "Meats & Seafood", Brand: "Hemani"},
		{ID: "2", Title: "Kettle Corn", Price: "$3.29", Stock: enums.StockStatusOnSale, Rating: 3.5, Category: "Biscuits & Snacks", Brand: "Angie's"},
		{ID: "3", Title: "Sparkling Water", Price: "$4.50", Stock: enums.StockStatusInStock, Rating: 4.8, Category: "Beverages", Brand: "LaCroix"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func decodeListResponse(t *testing.T, resp *httptest.ResponseRecorder) catalogListResponse {
	t.Helper()
	var envelope struct {
		Data catalogListResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestCatalogListPassThrough(t *testing.T) {
	handler := CatalogList(fixtureCatalog(t), testCatalogConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	data := decodeListResponse(t, resp)
	if data.Total != 3 || len(data.Items) != 3 {
		t.Fatalf("expected full catalog, got total=%d items=%d", data.Total, len(data.Items))
	}
	if data.PageSize != 12 {
		t.Fatalf("expected default page size 12, got %d", data.PageSize)
	}
}

func TestCatalogListFilterAndSort(t *testing.T) {
	handler := CatalogList(fixtureCatalog(t), testCatalogConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?in_stock=true&sort=price_low", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	data := decodeListResponse(t, resp)
	if data.Total != 2 {
		t.Fatalf("expected 2 in-stock products, got %d", data.Total)
	}
	if data.Items[0].ID != "3" || data.Items[1].ID != "1" {
		t.Fatalf("unexpected price ordering: %s, %s", data.Items[0].ID, data.Items[1].ID)
	}
}

func TestCatalogListEmptyResultKeepsTotal(t *testing.T) {
	handler := CatalogList(fixtureCatalog(t), testCatalogConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?q=durian", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	data := decodeListResponse(t, resp)
	if data.Total != 0 {
		t.Fatalf("expected total 0, got %d", data.Total)
	}
	if data.Items == nil {
		t.Fatal("items should be an empty list, not null")
	}
}

func TestCatalogListPageSizeCut(t *testing.T) {
	handler := CatalogList(fixtureCatalog(t), testCatalogConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?per_page=2", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	data := decodeListResponse(t, resp)
	if data.Total != 3 {
		t.Fatalf("total should count all matches, got %d", data.Total)
	}
	if len(data.Items) != 2 {
		t.Fatalf("expected 2 items on page, got %d", len(data.Items))
	}
}

func TestCatalogListRejectsBadQuery(t *testing.T) {
	handler := CatalogList(fixtureCatalog(t), testCatalogConfig(), nil)

	for _, query := range []string{
		"?per_page=zero",
		"?per_page=999",
		"?price_min=cheap",
		"?price_min=30&price_max=10",
		"?sort=alphabetical",
		"?in_stock=maybe",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog"+query, nil)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("query %s: expected 400 got %d", query, resp.Code)
		}
	}
}

func TestProductDetail(t *testing.T) {
	handler := ProductDetail(fixtureCatalog(t), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "2")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/2", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != "2" {
		t.Fatalf("unexpected product %s", envelope.Data.ID)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	handler := ProductDetail(fixtureCatalog(t), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "ghost")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/ghost", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCatalogFacets(t *testing.T) {
	handler := CatalogFacets(fixtureCatalog(t), testCatalogConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/facets", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data catalogFacetsResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Categories) != 3 || envelope.Data.Categories[0] != "Meats & Seafood" {
		t.Fatalf("unexpected categories %v", envelope.Data.Categories)
	}
	if envelope.Data.PriceRange.Max != 50 {
		t.Fatalf("unexpected price range %+v", envelope.Data.PriceRange)
	}
}
