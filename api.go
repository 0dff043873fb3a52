package ridership

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/ridership-insights/config"
)

// API wires the session store and analysis handlers into an HTTP surface for
// the dashboard front end.
type API struct {
	cfg   config.AppConfig
	store *SessionStore
	log   *zap.Logger
}

func NewAPI(cfg config.AppConfig, logger *zap.Logger) *API {
	return &API{cfg: cfg, store: NewSessionStore(), log: logger}
}

// Store exposes the session store, mainly for preloading a dataset from the
// CLI before serving.
func (a *API) Store() *SessionStore { return a.store }

// Router builds the chi router with CORS for the browser dashboard.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	origins := a.cfg.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/api/health", a.handleHealth)

	r.Post("/api/datasets", a.handleUpload)
	r.Delete("/api/datasets/{id}", a.handleDeleteDataset)

	r.Get("/api/datasets/{id}/congestion", a.handleCongestion)
	r.Get("/api/datasets/{id}/routes/top", a.handleTopRoutes)
	r.Get("/api/datasets/{id}/transfers/top", a.handleTopTransferPoints)
	r.Get("/api/datasets/{id}/anomalies", a.handleAnomalies)
	r.Get("/api/datasets/{id}/regions/passengers", a.handleRegionPassengers)
	r.Get("/api/datasets/{id}/regions/revenue", a.handleRegionRevenue)

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeRaw(w http.ResponseWriter, buf []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}
