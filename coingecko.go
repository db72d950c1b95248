package papertrade

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/go-resty/resty/v2"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGecko fetches spot prices from the CoinGecko /simple/price endpoint,
// all tracked assets in one batched call.
type CoinGecko struct {
	client *resty.Client
}

// NewCoinGecko returns a quoter against the public CoinGecko API. The key
// is optional; without one the public rate limits apply.
func NewCoinGecko(apiKey string) *CoinGecko {
	client := resty.New()
	client.SetBaseURL(coingeckoBaseURL)
	client.SetTimeout(10 * time.Second)
	if apiKey != "" {
		client.SetHeader("x-cg-demo-api-key", apiKey)
	}
	return &CoinGecko{client: client}
}

// Quotes implements Quoter. The response is accepted only if every tracked
// asset is present with a positive numeric USD price.
func (c *CoinGecko) Quotes(ctx context.Context) (map[Asset]float64, error) {
	ids := make([]string, 0, len(AllAssets()))
	for _, a := range AllAssets() {
		ids = append(ids, a.Info().QuoteID)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":           strings.Join(ids, ","),
			"vs_currencies": "usd",
		}).
		Get("/simple/price")
	if err != nil {
		return nil, fmt.Errorf("cannot GET %s/simple/price: %w", coingeckoBaseURL, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("cannot GET %s/simple/price: %s", coingeckoBaseURL, resp.Status())
	}

	// The payload is {"bitcoin":{"usd":43200}, ...}; read it loosely typed
	// and extract per-asset values by path.
	var jobj any
	if err := json.Unmarshal(resp.Body(), &jobj); err != nil {
		return nil, fmt.Errorf("invalid quote payload: %w", err)
	}

	quotes := make(map[Asset]float64, len(AllAssets()))
	for _, a := range AllAssets() {
		path := fmt.Sprintf("$[%q].usd", a.Info().QuoteID)
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			return nil, fmt.Errorf("no quote for %s: %w", a.Info().QuoteID, err)
		}
		val, ok := jval.(float64)
		if !ok || val <= 0 {
			return nil, fmt.Errorf("no usable quote for %s: %v", a.Info().QuoteID, jval)
		}
		quotes[a] = val
	}
	return quotes, nil
}
