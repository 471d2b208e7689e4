package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/bacola-storefront/api/middleware"
	"github.com/angelmondragon/bacola-storefront/api/responses"
	"github.com/angelmondragon/bacola-storefront/api/validators"
	cartsvc "github.com/angelmondragon/bacola-storefront/internal/cart"
	pkgerrors "github.com/angelmondragon/bacola-storefront/pkg/errors"
	"github.com/angelmondragon/bacola-storefront/pkg/logger"
	"github.com/angelmondragon/bacola-storefront/pkg/pricing"
)

type addCartItemPayload struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type updateCartItemPayload struct {
	Quantity int `json:"quantity"`
}

type cartLineView struct {
	Product   any    `json:"product"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total,omitempty"`
}

type cartView struct {
	Lines []cartLineView `json:"lines"`
	Total string         `json:"total"`
	Count int            `json:"count"`
}

func toCartView(summary cartsvc.Summary) cartView {
	lines := make([]cartLineView, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		view := cartLineView{Product: line.Product, Quantity: line.Quantity}
		if amount, err := line.Product.PriceAmount(); err == nil {
			view.LineTotal = pricing.Format(amount.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		lines = append(lines, view)
	}
	return cartView{
		Lines: lines,
		Total: pricing.Format(summary.Total),
		Count: summary.Count,
	}
}

// CartFetch returns the session's cart with derived totals.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session missing"))
			return
		}

		summary, err := svc.Get(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(summary))
	}
}

// CartAddItem adds a quantity of a product to the session's cart. Adding an
// already-carted product accumulates its quantity.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session missing"))
			return
		}

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		summary, err := svc.AddItem(ctx, sessionID, strings.TrimSpace(payload.ProductID), payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(summary))
	}
}

// CartUpdateItem sets the exact quantity for a carted product. Zero or a
// negative value removes the line.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session missing"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		if productID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		var payload updateCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		summary, err := svc.UpdateQuantity(ctx, sessionID, productID, payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(summary))
	}
}

// CartRemoveItem drops a product from the cart; removing an absent product is
// not an error.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session missing"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		if productID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		summary, err := svc.RemoveItem(ctx, sessionID, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartView(summary))
	}
}

// CartClear empties the session's cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		if sessionID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session missing"))
			return
		}

		if err := svc.Clear(ctx, sessionID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"cleared": true})
	}
}
