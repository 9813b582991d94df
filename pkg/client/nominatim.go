package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Nominatim's usage policy requires a contact-bearing User-Agent.
// Keep this string intact.
const nominatimUserAgent = "smartweather-smarttravel/1.0 (contact: user@example.com)"

// NominatimClient calls the OpenStreetMap Nominatim search endpoint.
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NominatimPlace is one raw search result. Coordinates arrive as
// strings and are parsed (and possibly discarded) by the caller.
type NominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
	Class       string `json:"class"`
}

func NewNominatimClient(baseURL string, timeout time.Duration, logger *zap.Logger) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Search runs a free-text geocoding query.
func (c *NominatimClient) Search(ctx context.Context, query string, limit int) ([]NominatimPlace, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(limit))

	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Nominatim request failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, wrapTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var places []NominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decoding response failed: %w", err)
	}

	return places, nil
}
