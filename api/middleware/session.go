package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/bacola-storefront/pkg/config"
	"github.com/angelmondragon/bacola-storefront/pkg/logger"
)

// Session assigns each browser a stable anonymous identity. The identity
// rides a cookie; a missing or malformed cookie gets a fresh uuid, and the
// cookie is re-issued on every request so the TTL slides forward. Cart and
// wishlist state is namespaced under this identity downstream.
func Session(cfg config.SessionConfig, secure bool, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = parsed.String()
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(cfg.TTL / time.Second),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
