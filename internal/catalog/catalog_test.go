package catalog

import (
	"testing"
)

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Product{
		{ID: "1", Title: "first", Price: "$1.00"},
		{ID: "1", Title: "second", Price: "$2.00"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate ids")
	}
}

func TestNewRejectsEmptyID(t *testing.T) {
	_, err := New([]Product{{Title: "no id", Price: "$1.00"}})
	if err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestFindByID(t *testing.T) {
	c, err := New([]Product{
		{ID: "a", Title: "Apples", Price: "$2.00"},
		{ID: "b", Title: "Bananas", Price: "$1.00"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, ok := c.FindByID("b")
	if !ok || p.Title != "Bananas" {
		t.Fatalf("expected bananas, got %+v (ok=%v)", p, ok)
	}
	if _, ok := c.FindByID("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	c, err := New([]Product{{ID: "a", Title: "Apples", Price: "$2.00"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := c.All()
	view[0].Title = "mutated"

	p, _ := c.FindByID("a")
	if p.Title != "Apples" {
		t.Fatal("catalog state leaked through All")
	}
}

func TestFacetsDistinctFirstSeenOrder(t *testing.T) {
	c, err := New([]Product{
		{ID: "1", Price: "$1.00", Category: "Beverages", Brand: "Simply"},
		{ID: "2", Price: "$1.00", Category: "Dairy & Eggs", Brand: "Chobani"},
		{ID: "3", Price: "$1.00", Category: "Beverages", Brand: "Simply"},
		{ID: "4", Price: "$1.00"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	categories := c.Categories()
	if len(categories) != 2 || categories[0] != "Beverages" || categories[1] != "Dairy & Eggs" {
		t.Fatalf("unexpected categories %v", categories)
	}
	brands := c.Brands()
	if len(brands) != 2 || brands[0] != "Simply" || brands[1] != "Chobani" {
		t.Fatalf("unexpected brands %v", brands)
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("expected default catalog to have products")
	}
	for _, p := range c.All() {
		if _, err := p.PriceAmount(); err != nil {
			t.Fatalf("product %s has unparsable price %q: %v", p.ID, p.Price, err)
		}
		if !p.Stock.IsValid() {
			t.Fatalf("product %s has unknown stock label %q", p.ID, p.Stock)
		}
		if p.Rating < 0 || p.Rating > 5 {
			t.Fatalf("product %s rating out of range: %f", p.ID, p.Rating)
		}
	}
}
