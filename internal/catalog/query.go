package catalog

import (
	"sort"
	"strings"

	"github.com/angelmondragon/bacola-storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

// FilterState carries every user-chosen search, filter and sort parameter for
// one catalog view. It lives only for the duration of a request.
type FilterState struct {
	Query      string
	Categories []string
	Brands     []string
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
	InStock    bool
	OnSale     bool
	SortBy     enums.SortKey
	PageSize   int
}

// Apply derives a filtered, sorted view of the given products. It is a pure
// function: no hidden state, identical inputs produce identical output.
//
// Stages run in fixed order: text match on title (case-insensitive substring),
// category set, brand set, inclusive price range (always applied), status
// flags, then a stable sort. An empty category or brand selection passes
// everything through. Each status flag filters independently against the
// single stock label, so selecting both yields an empty result. Products with
// unparsable prices are dropped by the price-range stage.
func Apply(products []Product, state FilterState) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, state) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, state.SortBy)
	return matched
}

func matches(p Product, state FilterState) bool {
	if query := strings.TrimSpace(state.Query); query != "" {
		if !strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			return false
		}
	}
	if len(state.Categories) > 0 && !containsString(state.Categories, p.Category) {
		return false
	}
	if len(state.Brands) > 0 && !containsString(state.Brands, p.Brand) {
		return false
	}

	amount, err := p.PriceAmount()
	if err != nil {
		return false
	}
	if amount.LessThan(state.PriceMin) || amount.GreaterThan(state.PriceMax) {
		return false
	}

	if state.InStock && p.Stock != enums.StockStatusInStock {
		return false
	}
	if state.OnSale && p.Stock != enums.StockStatusOnSale {
		return false
	}
	return true
}

func sortProducts(products []Product, key enums.SortKey) {
	switch key {
	case enums.SortKeyPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return priceOrZero(products[i]).LessThan(priceOrZero(products[j]))
		})
	case enums.SortKeyPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return priceOrZero(products[i]).GreaterThan(priceOrZero(products[j]))
		})
	case enums.SortKeyRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// SortKeyLatest keeps the catalog's input order.
	}
}

func priceOrZero(p Product) decimal.Decimal {
	amount, err := p.PriceAmount()
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
