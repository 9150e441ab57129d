package types

import "time"

// Asset is one tracked cryptocurrency at the time of the last refresh.
type Asset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Price       float64 `json:"current_price"`
	Change24h   float64 `json:"price_change_percentage_24h"`
	MarketCap   float64 `json:"market_cap"`
	TotalVolume float64 `json:"total_volume"`
	High24h     float64 `json:"high_24h"`
	Low24h      float64 `json:"low_24h"`
}

type Alert struct {
	ID        string    `json:"id"`
	AssetName string    `json:"asset_name"`
	Message   string    `json:"message"`
	AlertType string    `json:"alert_type"` // e.g., "price, volume, trend"
	CreatedAt time.Time `json:"created_at"`
}
