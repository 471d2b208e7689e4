package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/bacola-storefront/api/controllers"
	"github.com/angelmondragon/bacola-storefront/api/middleware"
	"github.com/angelmondragon/bacola-storefront/internal/carousel"
	"github.com/angelmondragon/bacola-storefront/internal/cart"
	"github.com/angelmondragon/bacola-storefront/internal/catalog"
	"github.com/angelmondragon/bacola-storefront/internal/wishlist"
	"github.com/angelmondragon/bacola-storefront/pkg/config"
	"github.com/angelmondragon/bacola-storefront/pkg/logger"
	"github.com/angelmondragon/bacola-storefront/pkg/metrics"
	"github.com/angelmondragon/bacola-storefront/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	storePinger redis.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	cat *catalog.Catalog,
	rotator *carousel.Rotator,
	cartService cart.Service,
	wishlistService wishlist.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, storePinger))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Get("/search", controllers.SearchRedirect(logg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Session, cfg.App.IsProd(), logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(cat, cfg.Catalog, logg))
			r.Get("/facets", controllers.CatalogFacets(cat, cfg.Catalog, logg))
			r.Get("/{productId}", controllers.ProductDetail(cat, logg))
		})

		r.Get("/carousel", controllers.CarouselSlides(rotator, cfg.Carousel, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistList(wishlistService, logg))
			r.Delete("/", controllers.WishlistClear(wishlistService, logg))
			r.Post("/items", controllers.WishlistAddItem(wishlistService, logg))
			r.Post("/toggle", controllers.WishlistToggle(wishlistService, logg))
			r.Delete("/items/{productId}", controllers.WishlistRemoveItem(wishlistService, logg))
		})
	})

	return r
}
