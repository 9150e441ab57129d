package alert

import (
	"strings"
	"testing"

	"cryptopulse-dashboard/internal/notifier"
	"cryptopulse-dashboard/internal/types"
)

func newTestDeriver() *Deriver {
	return NewDeriver(notifier.NewLogNotifier())
}

func TestScanThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name      string
		change    float64
		wantAlert bool
	}{
		{"well above threshold", 6.84, true},
		{"well below negative threshold", -7.2, true},
		{"just above threshold", 5.01, true},
		{"just below negative threshold", -5.01, true},
		{"exactly the threshold does not trigger", 5.00, false},
		{"exactly negative threshold does not trigger", -5.00, false},
		{"small change", 2.34, false},
		{"zero change", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeriver()
			fresh := d.Scan([]types.Asset{{ID: "bitcoin", Name: "Bitcoin", Change24h: tt.change}})

			if got := len(fresh) == 1; got != tt.wantAlert {
				t.Fatalf("Scan with change %v produced %d alerts, want alert = %v",
					tt.change, len(fresh), tt.wantAlert)
			}
			if tt.wantAlert {
				a := fresh[0]
				if a.AssetName != "Bitcoin" {
					t.Errorf("alert references %q, want %q", a.AssetName, "Bitcoin")
				}
				if a.AlertType != "price" {
					t.Errorf("alert type = %q, want %q", a.AlertType, "price")
				}
				if a.CreatedAt.IsZero() {
					t.Error("alert has zero creation timestamp")
				}
			}
		})
	}
}

func TestBuildMessageDirection(t *testing.T) {
	tests := []struct {
		name   string
		change float64
		want   string
	}{
		{"positive change increases", 6.84, "Bitcoin has increased by 6.84% over the last 24 hours"},
		{"negative change decreases", -7.2, "Bitcoin has decreased by 7.20% over the last 24 hours"},
		{"zero change counts as increase", 0, "Bitcoin has increased by 0.00% over the last 24 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildMessage(types.Asset{Name: "Bitcoin", Change24h: tt.change})
			if got != tt.want {
				t.Errorf("buildMessage(change=%v) = %q, want %q", tt.change, got, tt.want)
			}
		})
	}
}

func TestHistoryIsBoundedNewestFirst(t *testing.T) {
	d := newTestDeriver()

	first := []types.Asset{
		{ID: "solana", Name: "Solana", Change24h: 6.84},
		{ID: "dogecoin", Name: "Dogecoin", Change24h: -9.1},
	}
	second := []types.Asset{
		{ID: "bitcoin", Name: "Bitcoin", Change24h: 5.5},
		{ID: "ethereum", Name: "Ethereum", Change24h: -6.0},
		{ID: "ripple", Name: "XRP", Change24h: 8.8},
	}
	third := []types.Asset{
		{ID: "tether", Name: "Tether", Change24h: 5.2},
	}

	d.Scan(first)
	d.Scan(second)
	d.Scan(third)

	history := d.History()
	if len(history) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), HistoryLimit)
	}

	// Newest block first, relative order inside each block preserved; the
	// oldest entry (Dogecoin) has been evicted.
	wantOrder := []string{"Tether", "Bitcoin", "Ethereum", "XRP", "Solana"}
	for i, want := range wantOrder {
		if history[i].AssetName != want {
			t.Errorf("history[%d] = %q, want %q", i, history[i].AssetName, want)
		}
	}
}

func TestScanWithoutBreachLeavesHistoryUnchanged(t *testing.T) {
	d := newTestDeriver()
	d.Scan([]types.Asset{{ID: "solana", Name: "Solana", Change24h: 6.84}})

	before := d.History()
	fresh := d.Scan([]types.Asset{
		{ID: "bitcoin", Name: "Bitcoin", Change24h: 2.34},
		{ID: "ethereum", Name: "Ethereum", Change24h: -1.27},
	})

	if fresh != nil {
		t.Fatalf("quiet cycle produced %d alerts, want none", len(fresh))
	}

	after := d.History()
	if len(after) != len(before) {
		t.Fatalf("history length changed from %d to %d on a quiet cycle", len(before), len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Errorf("history[%d] changed on a quiet cycle", i)
		}
	}
}

func TestRepeatedBreachProducesNewAlerts(t *testing.T) {
	d := newTestDeriver()
	assets := []types.Asset{{ID: "solana", Name: "Solana", Change24h: 6.84}}

	a := d.Scan(assets)
	b := d.Scan(assets)

	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("expected one alert per cycle, got %d and %d", len(a), len(b))
	}
	if a[0].ID == b[0].ID {
		t.Error("alerts from separate cycles share an ID")
	}
	if len(d.History()) != 2 {
		t.Errorf("history length = %d, want 2 (no deduplication across cycles)", len(d.History()))
	}
}

func TestAlertIDsUnique(t *testing.T) {
	d := newTestDeriver()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		fresh := d.Scan([]types.Asset{{ID: "solana", Name: "Solana", Change24h: 6.84}})
		for _, a := range fresh {
			if seen[a.ID] {
				t.Fatalf("duplicate alert ID %q", a.ID)
			}
			if !strings.Contains(a.ID, "-") {
				t.Fatalf("alert ID %q missing tie-breaker", a.ID)
			}
			seen[a.ID] = true
		}
	}
}
