package cart

import (
	"testing"

	"github.com/angelmondragon/bacola-storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

func product(id, title, price string) catalog.Product {
	return catalog.Product{ID: id, Title: title, Price: price}
}

func TestAddAccumulatesQuantity(t *testing.T) {
	c := &Cart{}
	p := product("1", "Meatballs", "$7.25")

	c.Add(p, 1)
	c.Add(p, 2)
	c.Add(p, 3)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected single line, got %d", len(lines))
	}
	if lines[0].Quantity != 6 {
		t.Fatalf("expected quantity 6, got %d", lines[0].Quantity)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		c := &Cart{}
		c.Add(product("1", "Meatballs", "$7.25"), 2)
		c.SetQuantity("1", quantity)
		if c.Contains("1") {
			t.Fatalf("expected line removed for quantity %d", quantity)
		}
	}
}

func TestSetQuantityIsExactNotAdditive(t *testing.T) {
	c := &Cart{}
	c.Add(product("1", "Meatballs", "$7.25"), 5)
	c.SetQuantity("1", 2)
	if got := c.Lines()[0].Quantity; got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
}

func TestSetQuantityMissingLineIsNoOp(t *testing.T) {
	c := &Cart{}
	c.SetQuantity("ghost", 3)
	if len(c.Lines()) != 0 {
		t.Fatal("expected no lines to be created")
	}
}

func TestRemoveMissingLineIsNoOp(t *testing.T) {
	c := &Cart{}
	c.Add(product("1", "Meatballs", "$7.25"), 1)
	c.Remove("ghost")
	if !c.Contains("1") {
		t.Fatal("expected existing line untouched")
	}
}

func TestCountSumsQuantitiesNotLines(t *testing.T) {
	c := &Cart{}
	c.Add(product("1", "Meatballs", "$7.25"), 2)
	c.Add(product("2", "Kettle Corn", "$3.29"), 3)
	if got := c.Count(); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
}

func TestTotalMultipliesPriceByQuantity(t *testing.T) {
	c := &Cart{}
	c.Add(product("1", "Yogurt", "$5.45"), 2)

	total, err := c.Total()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("10.90")) {
		t.Fatalf("expected 10.90, got %s", total)
	}
}

func TestTotalSurfacesMalformedPrice(t *testing.T) {
	c := &Cart{}
	c.Add(product("1", "Broken", "$oops"), 1)
	if _, err := c.Total(); err == nil {
		t.Fatal("expected error for malformed price")
	}
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.Add(product("1", "Meatballs", "$7.25"), 2)
	c.Add(product("2", "Kettle Corn", "$3.29"), 1)
	c.Clear()
	if len(c.Lines()) != 0 || c.Count() != 0 {
		t.Fatal("expected empty cart after clear")
	}
}

func TestLinesPreserveInsertionOrder(t *testing.T) {
	c := &Cart{}
	c.Add(product("b", "Second", "$1.00"), 1)
	c.Add(product("a", "First", "$1.00"), 1)
	lines := c.Lines()
	if lines[0].Product.ID != "b" || lines[1].Product.ID != "a" {
		t.Fatalf("unexpected order: %v", lines)
	}
}
