package catalog

import (
	"github.com/angelmondragon/bacola-storefront/pkg/enums"
	"github.com/angelmondragon/bacola-storefront/pkg/pricing"
	"github.com/shopspring/decimal"
)

// Product is one immutable catalog record. Prices are currency-prefixed
// display strings ("$5.45"); use PriceAmount for arithmetic.
type Product struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Price         string            `json:"price"`
	OriginalPrice string            `json:"original_price"`
	Discount      string            `json:"discount,omitempty"`
	Stock         enums.StockStatus `json:"stock"`
	Rating        float64           `json:"rating"`
	RatingCount   int               `json:"rating_count"`
	Category      string            `json:"category,omitempty"`
	Brand         string            `json:"brand,omitempty"`
	Weight        string            `json:"weight,omitempty"`
	Badge         string            `json:"badge,omitempty"`
	BadgeColor    string            `json:"badge_color,omitempty"`
	Image         string            `json:"image"`
	Availability  int               `json:"availability"`
}

// PriceAmount parses the display price into a decimal amount.
func (p Product) PriceAmount() (decimal.Decimal, error) {
	return pricing.Parse(p.Price)
}
