package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/banshee-data/beam.report/internal/beam"
)

// WebServer serves the latest solve and sweep results as debug charts. It is
// an unauthenticated diagnostic surface, not a production API.
type WebServer struct {
	mu     sync.Mutex
	result *beam.Result
	sweep  []ConvergencePoint
}

// NewWebServer returns an empty WebServer.
func NewWebServer() *WebServer {
	return &WebServer{}
}

// SetResult publishes a solve result to the chart endpoints.
func (ws *WebServer) SetResult(res *beam.Result) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.result = res
}

// SetConvergence publishes sweep results to the convergence endpoint.
func (ws *WebServer) SetConvergence(points []ConvergencePoint) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.sweep = append([]ConvergencePoint(nil), points...)
}

// RegisterRoutes attaches the debug chart handlers to mux.
func (ws *WebServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/deflection", ws.handleDeflectionChart)
	mux.HandleFunc("/debug/convergence", ws.handleConvergenceChart)
}

func (ws *WebServer) handleDeflectionChart(w http.ResponseWriter, r *http.Request) {
	ws.mu.Lock()
	res := ws.result
	ws.mu.Unlock()

	if res == nil {
		ws.writeJSONError(w, http.StatusNotFound, "no solve result available")
		return
	}

	var buf bytes.Buffer
	if err := RenderOverlay(&buf, res); err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, "failed to render chart: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (ws *WebServer) handleConvergenceChart(w http.ResponseWriter, r *http.Request) {
	ws.mu.Lock()
	points := ws.sweep
	ws.mu.Unlock()

	if len(points) == 0 {
		ws.writeJSONError(w, http.StatusNotFound, "no sweep results available")
		return
	}

	var buf bytes.Buffer
	if err := RenderConvergence(&buf, points); err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, "failed to render chart: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (ws *WebServer) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
