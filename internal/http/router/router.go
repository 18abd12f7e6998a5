package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rosterbid/internal/http/handlers"
	ownmw "rosterbid/internal/http/middleware"
	"rosterbid/internal/http/middleware/ratelimit"
	"rosterbid/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// The rate limiter guards the resolution endpoint only.
func New(
	h *handlers.Handlers,
	drivers *handlers.DriverHandler,
	jobs *handlers.JobHandler,
	prefs *handlers.PreferenceHandler,
	assignments *handlers.AssignmentHandler,
	logger logx.Logger,
	rl *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(ownmw.Observability(logger))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))

	r.Post("/driver", drivers.Create)
	r.Get("/driver/{id}", drivers.GetByID)
	r.Put("/driver", drivers.Update)
	r.Delete("/driver/{id}", drivers.Delete)
	r.Get("/drivers", drivers.List)

	r.Post("/job", jobs.Create)
	r.Get("/job/{id}", jobs.GetByID)
	r.Delete("/job/{id}", jobs.Delete)
	r.Get("/jobs", jobs.List)

	r.Post("/preferences", prefs.Submit)
	r.Get("/preferences", prefs.Latest)

	r.Post("/assignments/pin", prefs.Pin)
	r.Delete("/assignments/pin/{jobID}", prefs.Unpin)
	r.Get("/assignments/pins", prefs.ListPins)

	r.Get("/settings/auto-assign", prefs.GetAutoAssign)
	r.Put("/settings/auto-assign", prefs.SetAutoAssign)

	r.Group(func(r chi.Router) {
		r.Use(rl.Handler())
		r.Post("/assignments/resolve", assignments.Resolve)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
