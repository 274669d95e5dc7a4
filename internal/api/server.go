// Package api exposes the designer over HTTP.
//
// Routes:
//
//	GET  /healthz                        liveness probe
//	POST /api/validate                   feasibility check without generation
//	POST /api/designs                    generate and persist a design
//	GET  /api/designs                    list stored design IDs
//	GET  /api/designs/{id}               fetch a stored design
//	DELETE /api/designs/{id}             remove a stored design
//	GET  /api/designs/{id}/floors        all floor plans for a design
//	GET  /api/designs/{id}/floors/{n}    one floor plan
//
// Generated designs and floor plans are cached keyed by a hash of the
// input parameters, so identical requests skip recomputation across
// replicas when a shared cache backend is configured.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ramisn26/AI-Architect/pkg/cache"
	"github.com/ramisn26/AI-Architect/pkg/designer"
	"github.com/ramisn26/AI-Architect/pkg/store"
)

// Server holds the HTTP handler dependencies. Construct with NewServer.
type Server struct {
	log   *log.Logger
	des   *designer.Designer
	store store.Store
	cache cache.Cache
	keyer *cache.Keyer
}

// NewServer creates a Server. A nil cache disables caching; a nil logger
// falls back to log.Default().
func NewServer(des *designer.Designer, st store.Store, c cache.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Server{
		log:   logger,
		des:   des,
		store: st,
		cache: c,
		keyer: cache.NewKeyer(""),
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/designs", s.handleCreateDesign)
		r.Get("/designs", s.handleListDesigns)
		r.Route("/designs/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetDesign)
			r.Delete("/", s.handleDeleteDesign)
			r.Get("/floors", s.handleAllFloors)
			r.Get("/floors/{floor}", s.handleFloor)
		})
	})

	return r
}

// logRequests logs one line per request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "bytes", ww.BytesWritten())
	})
}
