// Package census implements domain.Geocoder against the US Census Bureau
// geocoding service.
package census

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/elc-tools/pubrec/internal/domain"
	"github.com/elc-tools/pubrec/internal/observability"
)

// Client performs one-line address lookups against the Census geocoder's
// geographies endpoint, which returns the county and incorporated place of
// the best match. One GET per lookup, no retry; a failure surfaces to the
// caller immediately.
type Client struct {
	baseURL    string
	benchmark  string
	vintage    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Census geocoding client.
func NewClient(baseURL, benchmark, vintage string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		benchmark: benchmark,
		vintage:   vintage,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Geocode resolves a free-text address to (city, county, state) using the
// service's best match. Returns domain.ErrNoMatch when the service finds no
// candidate.
func (c *Client) Geocode(ctx context.Context, address string) (domain.GeocodeResult, error) {
	params := url.Values{
		"address":   {address},
		"benchmark": {c.benchmark},
		"vintage":   {c.vintage},
		"format":    {"json"},
	}
	fullURL := fmt.Sprintf("%s/geographies/onelineaddress?%s", c.baseURL, params.Encode())

	start := time.Now()
	result, err := c.doRequest(ctx, fullURL)
	c.metrics.GeocodeAPIDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, domain.ErrNoMatch):
		c.metrics.GeocodeRequests.WithLabelValues("no_match").Inc()
	case err != nil:
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
	default:
		c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	}
	return result, err
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (domain.GeocodeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.GeocodeResult{}, fmt.Errorf("census API error: status %d: %s", resp.StatusCode, body)
	}

	var censusResp response
	if err := json.NewDecoder(resp.Body).Decode(&censusResp); err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("decode response: %w", err)
	}

	if len(censusResp.Result.AddressMatches) == 0 {
		return domain.GeocodeResult{}, domain.ErrNoMatch
	}

	m := censusResp.Result.AddressMatches[0]
	result := domain.GeocodeResult{
		City:  m.AddressComponents.City,
		State: m.AddressComponents.State,
	}
	if places := m.Geographies["Incorporated Places"]; len(places) > 0 {
		result.City = places[0].Name
	}
	if counties := m.Geographies["Counties"]; len(counties) > 0 {
		result.County = counties[0].Name
	}
	return result, nil
}

// Census API response types.

type response struct {
	Result struct {
		AddressMatches []addressMatch `json:"addressMatches"`
	} `json:"result"`
}

type addressMatch struct {
	MatchedAddress    string                 `json:"matchedAddress"`
	AddressComponents addressComponents      `json:"addressComponents"`
	Geographies       map[string][]geography `json:"geographies"`
}

type addressComponents struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type geography struct {
	Name string `json:"NAME"`
}
