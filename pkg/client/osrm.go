package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/models"
	"go.uber.org/zap"
)

const osrmUserAgent = "smartweather-smarttravel/1.0"

// OSRMClient calls the OSRM routing engine.
type OSRMClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// OSRMRoute is one candidate route. Geometry is the GeoJSON line
// exactly as OSRM produced it.
type OSRMRoute struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry"`
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []OSRMRoute `json:"routes"`
}

func NewOSRMClient(baseURL string, timeout time.Duration, logger *zap.Logger) *OSRMClient {
	return &OSRMClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Route asks OSRM for the best route and returns only the first
// candidate. OSRM's path syntax is longitude-first; swapping the order
// produces wrong routes without any error, so the serialization here
// must stay lng,lat.
func (c *OSRMClient) Route(ctx context.Context, profile string, origin, destination models.Coordinate) (*OSRMRoute, error) {
	endpoint := fmt.Sprintf("%s/route/v1/%s/%s,%s;%s,%s?overview=simplified&geometries=geojson",
		c.baseURL,
		profile,
		formatCoord(origin.Lng), formatCoord(origin.Lat),
		formatCoord(destination.Lng), formatCoord(destination.Lat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}
	req.Header.Set("User-Agent", osrmUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("OSRM request failed",
			zap.String("profile", profile),
			zap.Error(err))
		return nil, wrapTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var response osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decoding response failed: %w", err)
	}

	if response.Code != "Ok" || len(response.Routes) == 0 {
		return nil, ErrNoRoute
	}

	return &response.Routes[0], nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
