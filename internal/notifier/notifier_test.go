package notifier

import (
	"testing"

	"cryptopulse-dashboard/internal/types"
)

func TestLogNotifierNeverFails(t *testing.T) {
	n := NewLogNotifier()
	err := n.SendAlert(types.Alert{
		ID:        "1-0001",
		AssetName: "Solana",
		Message:   "Solana has increased by 6.84% over the last 24 hours",
		AlertType: "price",
	})
	if err != nil {
		t.Fatalf("SendAlert returned error: %v", err)
	}
}

func TestTelegramNotifierFallsBackWithoutCredentials(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		chatID int64
	}{
		{"missing token", "", 123},
		{"missing chat id", "token", 0},
		{"missing both", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewTelegramNotifier(tt.token, tt.chatID)
			if _, ok := n.(*LogNotifier); !ok {
				t.Errorf("NewTelegramNotifier(%q, %d) = %T, want *LogNotifier fallback",
					tt.token, tt.chatID, n)
			}
		})
	}
}
