package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchRedirectCarriesQuery(t *testing.T) {
	handler := SearchRedirect(nil)

	req := httptest.NewRequest(http.MethodGet, "/search?q=fresh+fruit", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302 got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "/shop?q=fresh+fruit" {
		t.Fatalf("unexpected redirect target %s", got)
	}
}

func TestSearchRedirectEmptyQuery(t *testing.T) {
	handler := SearchRedirect(nil)

	req := httptest.NewRequest(http.MethodGet, "/search?q=++", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302 got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "/shop" {
		t.Fatalf("unexpected redirect target %s", got)
	}
}
