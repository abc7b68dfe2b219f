package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.coingecko.com"

// Snapshot is one asset's state as reported by the provider. Built fresh on
// every fetch, never cached across cycles.
type Snapshot struct {
	ID        string  `json:"id"`
	Symbol    string  `json:"symbol"`
	PriceUSD  float64 `json:"current_price"`
	Change24h float64 `json:"price_change_percentage_24h"`
}

// FetchError reports a failed provider request. Status is zero when the
// request never reached the provider.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("market fetch failed: status %d", e.Status)
	}
	return fmt.Sprintf("market fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ErrUnknownAsset is returned by SimplePrice when the provider does not
// recognize the requested asset id.
var ErrUnknownAsset = errors.New("unknown asset id")

// Client talks to the CoinGecko HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL points the client at an alternate API host.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &FetchError{Err: errors.Wrap(err, "could not build request")}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Err: errors.Wrap(err, "could not decode response")}
	}
	return nil
}

// Markets fetches current snapshots for the given asset ids in a single
// batched request. A failed request never yields a partial result.
func (c *Client) Markets(ctx context.Context, assetIDs []string) ([]Snapshot, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("ids", strings.Join(assetIDs, ","))
	params.Set("order", "market_cap_desc")
	params.Set("per_page", "100")
	params.Set("page", "1")
	params.Set("sparkline", "false")

	var snapshots []Snapshot
	if err := c.get(ctx, "/api/v3/coins/markets", params, &snapshots); err != nil {
		return nil, err
	}

	log.Debugf("fetched %d market snapshots: %s", len(snapshots), spew.Sdump(snapshots))
	return snapshots, nil
}

// SimplePrice fetches the current USD spot price for a single asset id.
func (c *Client) SimplePrice(ctx context.Context, assetID string) (float64, error) {
	params := url.Values{}
	params.Set("ids", assetID)
	params.Set("vs_currencies", "usd")

	var prices map[string]struct {
		USD float64 `json:"usd"`
	}
	if err := c.get(ctx, "/api/v3/simple/price", params, &prices); err != nil {
		return 0, err
	}

	entry, ok := prices[assetID]
	if !ok {
		return 0, errors.Wrap(ErrUnknownAsset, assetID)
	}
	return entry.USD, nil
}
