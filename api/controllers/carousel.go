package controllers

import (
	"net/http"

	"github.com/angelmondragon/bacola-storefront/api/responses"
	"github.com/angelmondragon/bacola-storefront/internal/carousel"
	"github.com/angelmondragon/bacola-storefront/pkg/config"
	pkgerrors "github.com/angelmondragon/bacola-storefront/pkg/errors"
	"github.com/angelmondragon/bacola-storefront/pkg/logger"
)

type carouselResponse struct {
	Slides       []carousel.Slide `json:"slides"`
	CurrentIndex int              `json:"current_index"`
	AutoPlay     bool             `json:"autoplay"`
	IntervalMS   int64            `json:"interval_ms"`
}

// CarouselSlides returns the slide ring with the rotator's live position.
func CarouselSlides(rot *carousel.Rotator, cfg config.CarouselConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if rot == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carousel unavailable"))
			return
		}

		_, index := rot.Current()
		responses.WriteSuccess(w, carouselResponse{
			Slides:       rot.Slides(),
			CurrentIndex: index,
			AutoPlay:     cfg.AutoPlay,
			IntervalMS:   cfg.Interval.Milliseconds(),
		})
	}
}
