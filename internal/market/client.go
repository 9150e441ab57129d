package market

import (
	"context"
	"cryptopulse-dashboard/internal/types"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// AssetsPerPage is the fixed page size requested from the markets endpoint.
const AssetsPerPage = 6

// Client fetches market data from a CoinGecko-compatible endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchTopAssets requests one page of the top assets by market capitalization.
// Any transport, status, or decode problem is returned to the caller; the
// caller decides how to mask it.
func (c *Client) FetchTopAssets(ctx context.Context) ([]types.Asset, error) {
	reqURL, err := c.marketsURL()
	if err != nil {
		return nil, errors.Wrap(err, "build markets URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build markets request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch markets")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("markets endpoint returned %s", resp.Status)
	}

	var assets []types.Asset
	if err := json.NewDecoder(resp.Body).Decode(&assets); err != nil {
		return nil, errors.Wrap(err, "decode markets response")
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("markets response (%d assets): %s", len(assets), spew.Sdump(assets))
	}

	return assets, nil
}

func (c *Client) marketsURL() (string, error) {
	u, err := url.Parse(c.baseURL + "/coins/markets")
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("vs_currency", "usd")
	q.Set("order", "market_cap_desc")
	q.Set("per_page", fmt.Sprintf("%d", AssetsPerPage))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	if c.apiKey != "" {
		q.Set("x_cg_demo_api_key", c.apiKey)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
