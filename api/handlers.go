package api

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/cheapstop/backend-go/models"
	"github.com/cheapstop/backend-go/search"
	"github.com/cheapstop/backend-go/storage"
)

type Handler struct {
	store *storage.PostgresStore // nil when no database is configured
}

func NewHandler(store *storage.PostgresStore) *Handler {
	return &Handler{store: store}
}

// Root handles GET / with a static liveness message.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "CheapStop backend running"})
}

// Search handles POST /api/search: parse items, synthesize and price
// candidate stores, filter by radius, rank.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	items := search.ParseItems(req.Query)
	if len(items) == 0 {
		http.Error(w, "Please provide at least one item in the query.", http.StatusBadRequest)
		return
	}

	// Absent radius falls back to the default; an explicit 0 disables the
	// filter inside the pipeline.
	radius := search.DefaultRadiusMiles
	if req.RadiusMiles != nil {
		radius = *req.RadiusMiles
	}

	stores := search.Run(items, req.Lat, req.Lng, radius)

	writeJSON(w, http.StatusOK, models.SearchResponse{
		Query:       req.Query,
		Mode:        "live",
		TotalStores: len(stores),
		Stores:      stores,
	})
}

// DBStatusResponse reports database availability for the diagnostic endpoint.
type DBStatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

// DBStatus handles GET /test. It probes the optional database connection and
// reports what it finds; it always answers 200 since a missing database is a
// valid deployment, not a server fault.
func (h *Handler) DBStatus(w http.ResponseWriter, r *http.Request) {
	resp := DBStatusResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Tables:           []string{},
	}
	resp.DatabaseURL = envFlag("DATABASE_URL")
	resp.DatabaseName = envFlag("DATABASE_NAME")

	if h.store != nil {
		st := h.store.Status(r.Context())
		switch {
		case st.Connected && st.Err == nil:
			resp.Database = "connected"
			resp.ConnectionStatus = "connected"
			resp.DatabaseName = st.DatabaseName
			if st.Tables != nil {
				resp.Tables = st.Tables
			}
		case st.Connected:
			resp.Database = "connected with errors: " + truncateErr(st.Err)
			resp.ConnectionStatus = "connected"
		default:
			resp.Database = "error: " + truncateErr(st.Err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func envFlag(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncateErr(err error) string {
	msg := err.Error()
	if len(msg) > 50 {
		msg = msg[:50]
	}
	return msg
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
