package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/angelmondragon/bacola-storefront/pkg/errors"
	"github.com/shopspring/decimal"
)

func TestParseQueryIntDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/shop", nil)
	value, err := ParseQueryInt(r, "per_page", 12, 1, 48)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 12 {
		t.Fatalf("expected default 12, got %d", value)
	}
}

func TestParseQueryIntRejectsNonNumeric(t *testing.T) {
	r := httptest.NewRequest("GET", "/shop?per_page=abc", nil)
	_, err := ParseQueryInt(r, "per_page", 12, 1, 48)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryIntRejectsOutOfRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/shop?per_page=100", nil)
	_, err := ParseQueryInt(r, "per_page", 12, 1, 48)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryDecimal(t *testing.T) {
	r := httptest.NewRequest("GET", "/shop?price_max=24.99", nil)
	value, err := ParseQueryDecimal(r, "price_max", decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(decimal.RequireFromString("24.99")) {
		t.Fatalf("expected 24.99, got %s", value)
	}

	value, err = ParseQueryDecimal(r, "price_min", decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.IsZero() {
		t.Fatalf("expected default zero, got %s", value)
	}

	r = httptest.NewRequest("GET", "/shop?price_max=cheap", nil)
	if _, err := ParseQueryDecimal(r, "price_max", decimal.Zero); err == nil {
		t.Fatal("expected error for malformed decimal")
	}
}

func TestParseQueryBool(t *testing.T) {
	r := httptest.NewRequest("GET", "/shop?in_stock=true", nil)
	value, err := ParseQueryBool(r, "in_stock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value {
		t.Fatal("expected true")
	}

	value, err = ParseQueryBool(r, "on_sale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value {
		t.Fatal("expected false for absent flag")
	}

	r = httptest.NewRequest("GET", "/shop?in_stock=maybe", nil)
	if _, err := ParseQueryBool(r, "in_stock"); err == nil {
		t.Fatal("expected error for non-boolean flag")
	}
}

func TestParseQueryList(t *testing.T) {
	r := httptest.NewRequest("GET", "/shop?categories=Beverages,+Frozen+Foods,", nil)
	values := ParseQueryList(r, "categories")
	if len(values) != 2 || values[0] != "Beverages" || values[1] != "Frozen Foods" {
		t.Fatalf("unexpected values %v", values)
	}
	if ParseQueryList(r, "brands") != nil {
		t.Fatal("expected nil for absent parameter")
	}
}
