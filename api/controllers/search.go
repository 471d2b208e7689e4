package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/angelmondragon/bacola-storefront/pkg/logger"
)

// SearchRedirect sends the header search box to the shop listing with the
// query carried along. An empty query lands on the unfiltered listing.
func SearchRedirect(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := "/shop"
		if query := strings.TrimSpace(r.URL.Query().Get("q")); query != "" {
			target += "?q=" + url.QueryEscape(query)
		}
		if logg != nil {
			ctx := logg.WithField(r.Context(), "target", target)
			logg.Info(ctx, "search.redirect")
		}
		http.Redirect(w, r, target, http.StatusFound)
	}
}
