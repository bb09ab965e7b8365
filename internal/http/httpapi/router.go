// Package httpapi wires the middleware stack and route table.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/oyi77/Berkah-karya-mvp-pro/internal/http/handlers"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/infra"
	"github.com/oyi77/Berkah-karya-mvp-pro/internal/middleware"
)

func NewRouter(cfg *infra.Config, logger infra.Logger, app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.I18N(cfg.DefaultLocale),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/presets", app.Presets)

	r.Route("/v1/sessions", func(r chi.Router) {
		r.Post("/", app.SessionCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.SessionGet)
			r.Delete("/", app.SessionDelete)
			r.Put("/inputs", app.SessionSetInputs)

			r.Post("/products", app.ProductAdd)
			r.Delete("/products", app.ProductsClear)
			r.Put("/model", app.ModelSet)
			r.Put("/background", app.BackgroundSet)
			r.Post("/video", app.VideoUpload)

			r.Post("/produce", app.Produce)
			r.Post("/shots/{index}/regenerate", app.ShotRegenerate)
			r.Put("/shots/{index}/narration", app.NarrationSync)

			r.Post("/trend/analyze", app.TrendAnalyze)
			r.Get("/trend/report", app.TrendReport)
			r.Get("/trend/pack", app.TrendPack)

			r.Post("/assist/describe", app.AssistDescribe)
			r.Post("/assist/campaign", app.AssistCampaign)

			r.Get("/export", app.Export)
		})
	})

	return r
}
