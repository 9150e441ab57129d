package dashboard

import (
	"context"
	"time"

	"cryptopulse-dashboard/internal/alert"
	"cryptopulse-dashboard/internal/market"
	"cryptopulse-dashboard/internal/metrics"
	"cryptopulse-dashboard/internal/types"

	log "github.com/sirupsen/logrus"
)

// Fetcher is the market-data dependency of the refresh loop.
type Fetcher interface {
	FetchTopAssets(ctx context.Context) ([]types.Asset, error)
}

// Refresher drives the fetch-then-derive cycle: once immediately on start,
// then on every tick of a fixed-interval timer until the context is
// cancelled.
type Refresher struct {
	fetcher  Fetcher
	deriver  *alert.Deriver
	state    *State
	interval time.Duration
}

func NewRefresher(fetcher Fetcher, deriver *alert.Deriver, state *State, interval time.Duration) *Refresher {
	return &Refresher{
		fetcher:  fetcher,
		deriver:  deriver,
		state:    state,
		interval: interval,
	}
}

func (r *Refresher) Start(ctx context.Context) {
	log.Infof("Refresh loop started, polling every %s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.RunCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("Refresh loop stopped")
			return
		case <-ticker.C:
			r.RunCycle(ctx)
		}
	}
}

// RunCycle performs one fetch-then-derive pass. Fetch failures of any kind
// are masked by the static fallback dataset so the dashboard never renders
// an error state; the failure is only logged and counted.
func (r *Refresher) RunCycle(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("Recovered from panic in refresh cycle: %v", rec)
		}
	}()

	assets, err := r.fetcher.FetchTopAssets(ctx)
	usedFallback := false
	if err != nil {
		log.Errorf("Failed to fetch market data, serving fallback dataset: %v", err)
		assets = market.FallbackAssets()
		usedFallback = true
	}

	// A cycle resolving after teardown must not touch state.
	if ctx.Err() != nil {
		return
	}

	r.state.SetAssets(assets)

	fresh := r.deriver.Scan(assets)
	r.state.SetAlerts(r.deriver.History())

	metrics.Default.RefreshCycles.Inc()
	metrics.Default.AssetsTracked.Set(float64(len(assets)))
	if usedFallback {
		metrics.Default.FetchFailures.Inc()
		metrics.Default.FallbacksServed.Inc()
	}
	if len(fresh) > 0 {
		metrics.Default.AlertsGenerated.Add(float64(len(fresh)))
	}
	for _, asset := range assets {
		if breached(asset) {
			metrics.Default.AlertsPerAsset.WithLabelValues(asset.ID, asset.Name).Inc()
		}
	}

	log.Debugf("Refresh cycle complete: %d assets, %d new alerts, fallback=%t",
		len(assets), len(fresh), usedFallback)
}

func breached(asset types.Asset) bool {
	if asset.Change24h < 0 {
		return -asset.Change24h > alert.ChangeThreshold
	}
	return asset.Change24h > alert.ChangeThreshold
}
