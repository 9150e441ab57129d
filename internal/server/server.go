package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cryptopulse-dashboard/internal/chart"
	"cryptopulse-dashboard/internal/dashboard"
	"cryptopulse-dashboard/internal/types"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Server is the dashboard's HTTP surface. Every handler is a pure function
// of the view state.
type Server struct {
	state *dashboard.State
	mux   *http.ServeMux
}

func New(state *dashboard.State) *Server {
	s := &Server{
		state: state,
		mux:   http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/dashboard", s.handleDashboard)
	s.mux.HandleFunc("/api/assets", s.handleAssets)
	s.mux.HandleFunc("/api/alerts", s.handleAlerts)
	s.mux.HandleFunc("/chart.png", s.handleChart)
	s.mux.HandleFunc("/health", healthCheckHandler)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(port int) error {
	log.Infof("Launching dashboard on :%d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), s.mux)
}

type dashboardPayload struct {
	Assets         []types.Asset `json:"assets"`
	Alerts         []types.Alert `json:"alerts"`
	LastUpdated    time.Time     `json:"last_updated"`
	LastUpdatedAgo string        `json:"last_updated_ago"`
	Loading        bool          `json:"loading"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.payload())
}

func (s *Server) handleAssets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.state.Assets())
}

func (s *Server) handleAlerts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.state.Alerts())
}

func (s *Server) handleChart(w http.ResponseWriter, _ *http.Request) {
	assets := s.state.Assets()
	png, err := chart.RenderChangeOverview(assets)
	if err != nil {
		log.Errorf("Failed to render change overview: %v", err)
		http.Error(w, "chart unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) payload() dashboardPayload {
	snap := s.state.Snapshot()
	p := dashboardPayload{
		Assets:         snap.Assets,
		Alerts:         snap.Alerts,
		LastUpdated:    snap.LastUpdated,
		LastUpdatedAgo: updatedAgo(snap.LastUpdated),
		Loading:        snap.Loading,
	}
	if p.Assets == nil {
		p.Assets = []types.Asset{}
	}
	if p.Alerts == nil {
		p.Alerts = []types.Alert{}
	}
	return p
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}
