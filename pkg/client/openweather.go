package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// OpenWeatherClient calls the OpenWeatherMap current-conditions and
// five-day-forecast endpoints in metric units.
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// CurrentResponse is the /data/2.5/weather payload. Cod is a JSON
// number on success but a quoted string on error responses, so it is
// kept as json.Number.
type CurrentResponse struct {
	Name    string      `json:"name"`
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// ForecastResponse is the /data/2.5/forecast payload, a list of
// three-hour intervals. Cod varies in type the same way it does on the
// current-conditions endpoint; Message is a number (0) on success but
// the human-readable error text on failure, so it stays raw.
type ForecastResponse struct {
	Cod     json.Number     `json:"cod"`
	Message json.RawMessage `json:"message"`
	List    []ForecastEntry `json:"list"`
}

// ForecastEntry is one forecast interval. DtTxt is the provider's
// "YYYY-MM-DD HH:MM:SS" timestamp string. Pop is the probability of
// precipitation as a fraction in [0,1]; absent means zero.
type ForecastEntry struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Icon string `json:"icon"`
	} `json:"weather"`
	Pop float64 `json:"pop"`
}

func NewOpenWeatherClient(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// CurrentWeather fetches current conditions for a city. The body is
// decoded whatever the HTTP status: OpenWeatherMap reports errors via
// the body cod/message pair, which surfaces here as an *APIError.
func (c *OpenWeatherClient) CurrentWeather(ctx context.Context, city string) (*CurrentResponse, error) {
	var response CurrentResponse
	if err := c.get(ctx, "/weather", city, &response); err != nil {
		return nil, err
	}

	if response.Cod.String() != "200" {
		return nil, &APIError{Code: response.Cod.String(), Message: response.Message}
	}

	return &response, nil
}

// Forecast fetches the interval forecast for a city. The body carries
// the same cod/message error convention as the current-conditions
// endpoint, so an error body never passes as an empty forecast.
func (c *OpenWeatherClient) Forecast(ctx context.Context, city string) (*ForecastResponse, error) {
	var response ForecastResponse
	if err := c.get(ctx, "/forecast", city, &response); err != nil {
		return nil, err
	}

	if response.Cod.String() != "200" {
		// On failure Message holds the error text; leave it empty
		// when the body had none or a numeric message.
		var message string
		_ = json.Unmarshal(response.Message, &message)
		return nil, &APIError{Code: response.Cod.String(), Message: message}
	}

	return &response, nil
}

func (c *OpenWeatherClient) get(ctx context.Context, path, city string, out interface{}) error {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("OpenWeatherMap request failed",
			zap.String("path", path),
			zap.String("city", city),
			zap.Error(err))
		return wrapTransport(err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}

	return nil
}
