package ridership

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Sessions  int    `json:"sessions"`
	Timestamp string `json:"timestamp"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Sessions:  a.store.Len(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
