package alert

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"cryptopulse-dashboard/internal/notifier"
	"cryptopulse-dashboard/internal/types"
	"cryptopulse-dashboard/lib/translation"

	log "github.com/sirupsen/logrus"
)

const (
	// ChangeThreshold is the absolute 24h percentage change an asset must
	// strictly exceed to produce an alert.
	ChangeThreshold = 5.0

	// HistoryLimit bounds the alert history; older entries are dropped.
	HistoryLimit = 5
)

// Deriver scans asset snapshots for threshold breaches and keeps a bounded,
// newest-first history of the alerts it produced. Alerts are ephemeral and
// never deduplicated across cycles.
type Deriver struct {
	notifier notifier.Interface
	mutex    sync.RWMutex
	history  []types.Alert
}

func NewDeriver(notifyService notifier.Interface) *Deriver {
	return &Deriver{
		notifier: notifyService,
	}
}

// Scan derives alerts from one fetch result and merges them into the
// history. The freshly created alerts are returned in snapshot order; a
// cycle without breaches leaves the history untouched.
func (d *Deriver) Scan(assets []types.Asset) []types.Alert {
	var fresh []types.Alert
	now := time.Now()

	for _, asset := range assets {
		if math.Abs(asset.Change24h) <= ChangeThreshold {
			continue
		}
		fresh = append(fresh, types.Alert{
			ID:        newAlertID(),
			AssetName: asset.Name,
			Message:   buildMessage(asset),
			AlertType: "price",
			CreatedAt: now,
		})
	}

	if len(fresh) == 0 {
		return nil
	}

	d.mutex.Lock()
	d.history = append(append([]types.Alert{}, fresh...), d.history...)
	if len(d.history) > HistoryLimit {
		d.history = d.history[:HistoryLimit]
	}
	d.mutex.Unlock()

	for _, a := range fresh {
		if err := d.notifier.SendAlert(a); err != nil {
			log.Errorf("Failed to send alert notification for %s: %v", a.AssetName, err)
		}
	}

	return fresh
}

// History returns the bounded alert list, newest first.
func (d *Deriver) History() []types.Alert {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	history := make([]types.Alert, len(d.history))
	copy(history, d.history)
	return history
}

// buildMessage classifies a zero change as an increase, matching the ">= 0"
// direction comparison used throughout.
func buildMessage(asset types.Asset) string {
	direction := translation.Translate("increased")
	if asset.Change24h < 0 {
		direction = translation.Translate("decreased")
	}

	return translation.Translate(
		"%s has %s by %.2f%% over the last 24 hours",
		asset.Name, direction, math.Abs(asset.Change24h),
	)
}

// newAlertID is unique for the process lifetime: monotonic clock plus a
// random tie-breaker.
func newAlertID() string {
	return fmt.Sprintf("%d-%04d", time.Now().UnixNano(), rand.Intn(10000))
}
