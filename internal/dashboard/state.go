package dashboard

import (
	"sync"
	"time"

	"cryptopulse-dashboard/internal/types"
)

// State is the in-memory view state behind the dashboard handlers: the
// current asset snapshot, the bounded alert list, the last-updated stamp,
// and a loading flag that is true only before the first cycle resolves.
// It is the single place the refresher writes and the only place the
// presentation layer reads.
type State struct {
	mutex       sync.RWMutex
	assets      []types.Asset
	alerts      []types.Alert
	lastUpdated time.Time
	loading     bool
}

func NewState() *State {
	return &State{
		lastUpdated: time.Now(),
		loading:     true,
	}
}

// SetAssets replaces the snapshot list in full and records the completion
// time. The first call, success or fallback, clears the loading flag.
func (s *State) SetAssets(assets []types.Asset) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.assets = assets
	s.lastUpdated = time.Now()
	s.loading = false
}

// SetAlerts replaces the displayed alert list.
func (s *State) SetAlerts(alerts []types.Alert) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.alerts = alerts
}

func (s *State) Assets() []types.Asset {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	assets := make([]types.Asset, len(s.assets))
	copy(assets, s.assets)
	return assets
}

func (s *State) Alerts() []types.Alert {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	alerts := make([]types.Alert, len(s.alerts))
	copy(alerts, s.alerts)
	return alerts
}

func (s *State) LastUpdated() time.Time {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastUpdated
}

func (s *State) Loading() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.loading
}

// Snapshot is a consistent read of everything the presenter consumes.
type Snapshot struct {
	Assets      []types.Asset
	Alerts      []types.Alert
	LastUpdated time.Time
	Loading     bool
}

func (s *State) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snap := Snapshot{
		Assets:      make([]types.Asset, len(s.assets)),
		Alerts:      make([]types.Alert, len(s.alerts)),
		LastUpdated: s.lastUpdated,
		Loading:     s.loading,
	}
	copy(snap.Assets, s.assets)
	copy(snap.Alerts, s.alerts)
	return snap
}
