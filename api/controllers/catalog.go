package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/bacola-storefront/api/responses"
	"github.com/angelmondragon/bacola-storefront/api/validators"
	"github.com/angelmondragon/bacola-storefront/internal/catalog"
	"github.com/angelmondragon/bacola-storefront/pkg/config"
	"github.com/angelmondragon/bacola-storefront/pkg/enums"
	pkgerrors "github.com/angelmondragon/bacola-storefront/pkg/errors"
	"github.com/angelmondragon/bacola-storefront/pkg/logger"
	"github.com/angelmondragon/bacola-storefront/pkg/pagination"
)

type catalogListResponse struct {
	Items    []catalog.Product `json:"items"`
	Total    int               `json:"total"`
	PageSize int               `json:"page_size"`
}

type catalogFacetsResponse struct {
	Categories []string          `json:"categories"`
	Brands     []string          `json:"brands"`
	PriceRange catalogPriceRange `json:"price_range"`
}

type catalogPriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CatalogList returns the filtered, sorted, size-limited product listing.
// Total reflects the match count before the page cut so clients can tell an
// empty page from an empty result.
func CatalogList(cat *catalog.Catalog, cfg config.CatalogConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		state, err := filterStateFromQuery(r, cfg)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		matched := catalog.Apply(cat.All(), state)
		page := pagination.Prefix(matched, state.PageSize)

		responses.WriteSuccess(w, catalogListResponse{
			Items:    page,
			Total:    len(matched),
			PageSize: state.PageSize,
		})
	}
}

// ProductDetail returns one product by identity.
func ProductDetail(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		if productID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		product, ok := cat.FindByID(productID)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CatalogFacets returns the filter vocabulary the catalog supports: distinct
// categories and brands in first-seen order plus the price slider bounds.
func CatalogFacets(cat *catalog.Catalog, cfg config.CatalogConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		responses.WriteSuccess(w, catalogFacetsResponse{
			Categories: cat.Categories(),
			Brands:     cat.Brands(),
			PriceRange: catalogPriceRange{
				Min: cfg.DefaultPriceMin,
				Max: cfg.DefaultPriceMax,
			},
		})
	}
}

func filterStateFromQuery(r *http.Request, cfg config.CatalogConfig) (catalog.FilterState, error) {
	priceMin, err := validators.ParseQueryDecimal(r, "price_min", decimal.NewFromInt(int64(cfg.DefaultPriceMin)))
	if err != nil {
		return catalog.FilterState{}, err
	}
	priceMax, err := validators.ParseQueryDecimal(r, "price_max", decimal.NewFromInt(int64(cfg.DefaultPriceMax)))
	if err != nil {
		return catalog.FilterState{}, err
	}
	if priceMin.GreaterThan(priceMax) {
		return catalog.FilterState{}, pkgerrors.New(pkgerrors.CodeValidation, "price range inverted").
			WithDetails(map[string]any{"price_min": priceMin.String(), "price_max": priceMax.String()})
	}

	inStock, err := validators.ParseQueryBool(r, "in_stock")
	if err != nil {
		return catalog.FilterState{}, err
	}
	onSale, err := validators.ParseQueryBool(r, "on_sale")
	if err != nil {
		return catalog.FilterState{}, err
	}

	sortBy, err := enums.ParseSortKey(strings.TrimSpace(r.URL.Query().Get("sort")))
	if err != nil {
		return catalog.FilterState{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key")
	}

	perPage, err := validators.ParseQueryInt(r, "per_page", cfg.DefaultPageSize, 1, cfg.MaxPageSize)
	if err != nil {
		return catalog.FilterState{}, err
	}

	return catalog.FilterState{
		Query:      strings.TrimSpace(r.URL.Query().Get("q")),
		Categories: validators.ParseQueryList(r, "categories"),
		Brands:     validators.ParseQueryList(r, "brands"),
		PriceMin:   priceMin,
		PriceMax:   priceMax,
		InStock:    inStock,
		OnSale:     onSale,
		SortBy:     sortBy,
		PageSize:   pagination.Normalize(perPage, cfg.DefaultPageSize, cfg.MaxPageSize),
	}, nil
}
