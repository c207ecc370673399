package web

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/fecparse/internal/core"
	"github.com/JonMunkholm/fecparse/internal/database"
	"github.com/JonMunkholm/fecparse/internal/filing"
	"github.com/JonMunkholm/fecparse/internal/schema"
)

// maxRunsLimit caps ?limit= on GET /api/runs?source=db.
const maxRunsLimit = 1000

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string                `json:"status"`
	Mode   string                `json:"mode"`
	Run    core.RunLimiterStatus `json:"run"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Mode:   s.service.Options().Mode.String(),
		Run:    s.service.Limiter().Status(),
	})
}

// LayoutInfo describes one record layout.
type LayoutInfo struct {
	Kind      schema.Kind  `json:"kind"`
	Group     schema.Group `json:"group"`
	Label     string       `json:"label"`
	Prefix    string       `json:"prefix,omitempty"`
	FormTypes []string     `json:"formTypes,omitempty"`
	Table     string       `json:"table"`
	Width     int          `json:"width"`
	Columns   []string     `json:"columns"`
}

// handleSchema lists the layouts, or returns the Postgres DDL with ?format=sql.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "sql" {
		w.Header().Set("Content-Type", "application/sql; charset=utf-8")
		io.WriteString(w, database.DDL())
		return
	}

	defs := schema.All()
	layouts := make([]LayoutInfo, len(defs))
	for i, def := range defs {
		layouts[i] = LayoutInfo{
			Kind:      def.Kind,
			Group:     def.Group,
			Label:     def.Label,
			Prefix:    def.Prefix,
			FormTypes: def.FormTypes,
			Table:     def.Table,
			Width:     def.Width(),
			Columns:   def.Columns,
		}
	}
	writeJSON(w, http.StatusOK, layouts)
}

// StartRunResponse is the body of POST /api/runs.
type StartRunResponse struct {
	RunID string `json:"runId"`
	URL   string `json:"url"`
}

// handleStartRun starts a background run. Returns 409 while a run is active.
func (s *Server) handleStartRun(w http.ResponseWriter, r *http.Request) {
	runID, err := s.service.StartRun()
	if err != nil {
		respondError(w, r, err)
		return
	}
	url := "/api/runs/" + runID
	w.Header().Set("Location", url)
	writeJSON(w, http.StatusAccepted, StartRunResponse{RunID: runID, URL: url})
}

// handleListRuns returns recent runs from memory, or from the database with
// ?source=db.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("source") == "db" {
		limit := parseIntParam(r, "limit", 50, maxRunsLimit)
		runs, err := s.service.StoredRuns(r.Context(), int32(limit))
		if err != nil {
			respondError(w, r, fmt.Errorf("list stored runs: %w", err))
			return
		}
		writeJSON(w, http.StatusOK, storedRuns(runs))
		return
	}
	writeJSON(w, http.StatusOK, s.service.History().List())
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	res, err := s.service.History().Get(chi.URLParam(r, "runID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleInspect runs the request body through the engine as a dry run.
// The file name comes from ?name= (default upload.fec) and the render mode
// from ?mode= (default: the server's mode).
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	opts := s.service.Options()

	mode := opts.Mode
	if m := r.URL.Query().Get("mode"); m != "" {
		parsed, err := filing.ParseMode(m)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "ERR000"})
			return
		}
		mode = parsed
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "upload" + filing.Extension
	}

	body := http.MaxBytesReader(w, r.Body, maxInspectSize)
	report, err := core.Inspect(r.Context(), body, name, mode, opts.Encoding)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// StoredRun is a run row from the database.
type StoredRun struct {
	RunID      string `json:"runId"`
	Mode       string `json:"mode"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
	Accepted   int32  `json:"accepted"`
	Rejected   int32  `json:"rejected"`
	Records    int64  `json:"records"`
	Review     int64  `json:"review"`
}

func storedRuns(rows []database.ImportRun) []StoredRun {
	out := make([]StoredRun, len(rows))
	for i, row := range rows {
		out[i] = StoredRun{
			RunID:      formatUUID(row.ID.Bytes, row.ID.Valid),
			Mode:       row.Mode,
			StartedAt:  formatTimestamp(row.StartedAt.Time, row.StartedAt.Valid),
			FinishedAt: formatTimestamp(row.FinishedAt.Time, row.FinishedAt.Valid),
			Accepted:   row.Accepted,
			Rejected:   row.Rejected,
			Records:    row.Records,
			Review:     row.Review,
		}
	}
	return out
}

// parseIntParam parses a positive integer query parameter with a default
// value, capped at maxVal.
func parseIntParam(r *http.Request, name string, defaultVal, maxVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return min(i, maxVal)
}
