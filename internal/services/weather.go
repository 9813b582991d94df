package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/models"
	"github.com/amanchougule09/Smart-Weather-Travel-Planner/pkg/client"
	"go.uber.org/zap"
)

const dailyGroupLimit = 3

// WeatherProvider is the slice of the OpenWeatherMap client the
// aggregator needs.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (*client.CurrentResponse, error)
	Forecast(ctx context.Context, city string) (*client.ForecastResponse, error)
}

// WeatherService merges current conditions and the interval forecast
// into one display-ready report.
type WeatherService struct {
	provider    WeatherProvider
	defaultCity string
	logger      *zap.Logger
}

func NewWeatherService(provider WeatherProvider, defaultCity string, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		provider:    provider,
		defaultCity: defaultCity,
		logger:      logger,
	}
}

// Report fetches current conditions and, only when those succeed, the
// forecast. The two calls stay sequential: a failed current-conditions
// lookup must not fire the forecast request.
func (s *WeatherService) Report(ctx context.Context, city string) (*models.WeatherReport, error) {
	if strings.TrimSpace(city) == "" {
		city = s.defaultCity
	}

	current, err := s.provider.CurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}
	if len(current.Weather) == 0 {
		return nil, fmt.Errorf("current weather for %q has no conditions entry", city)
	}

	forecast, err := s.provider.Forecast(ctx, city)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Weather report assembled",
		zap.String("city", current.Name),
		zap.Int("forecast_entries", len(forecast.List)))

	return &models.WeatherReport{
		City:        current.Name,
		Temperature: current.Main.Temp,
		FeelsLike:   current.Main.FeelsLike,
		TempMin:     current.Main.TempMin,
		TempMax:     current.Main.TempMax,
		Description: current.Weather[0].Description,
		Icon:        current.Weather[0].Icon,
		Hourly:      buildHourly(forecast.List),
		Daily:       buildDaily(forecast.List),
	}, nil
}

// buildHourly takes the first 6 forecast intervals in provider order.
func buildHourly(entries []client.ForecastEntry) []models.HourlySlot {
	slots := make([]models.HourlySlot, 0, 6)
	for _, entry := range entries {
		if len(slots) == 6 {
			break
		}
		slots = append(slots, models.HourlySlot{
			Time: timeOfDay(entry.DtTxt),
			Temp: entry.Main.Temp,
			Icon: entryIcon(entry),
			Rain: rainPercent(entry.Pop),
		})
	}
	return slots
}

// buildDaily groups intervals by their calendar-date string, keeping at
// most 3 groups in order of first appearance. The upstream order is
// trusted as-is; entries are never re-sorted chronologically.
func buildDaily(entries []client.ForecastEntry) []models.DailySummary {
	type bucket struct {
		min, max float64
		rain     int
		icon     string
	}

	order := make([]string, 0, 8)
	buckets := make(map[string]*bucket)

	for _, entry := range entries {
		date, _, _ := strings.Cut(entry.DtTxt, " ")
		temp := entry.Main.Temp
		rain := rainPercent(entry.Pop)

		b, seen := buckets[date]
		if !seen {
			// The first interval of a date donates its icon.
			buckets[date] = &bucket{min: temp, max: temp, rain: rain, icon: entryIcon(entry)}
			order = append(order, date)
			continue
		}

		b.min = math.Min(b.min, temp)
		b.max = math.Max(b.max, temp)
		if rain > b.rain {
			b.rain = rain
		}
	}

	daily := make([]models.DailySummary, 0, dailyGroupLimit)
	for i, date := range order {
		if i == dailyGroupLimit {
			break
		}

		label := date
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		}

		b := buckets[date]
		daily = append(daily, models.DailySummary{
			Date: label,
			Min:  int(math.Round(b.min)),
			Max:  int(math.Round(b.max)),
			Rain: b.rain,
			Icon: b.icon,
		})
	}
	return daily
}

// timeOfDay truncates a "YYYY-MM-DD HH:MM:SS" timestamp to HH:MM.
func timeOfDay(dtTxt string) string {
	_, after, found := strings.Cut(dtTxt, " ")
	if !found {
		return dtTxt
	}
	if len(after) > 5 {
		return after[:5]
	}
	return after
}

// rainPercent converts a probability-of-precipitation fraction into a
// whole percentage, truncating toward zero.
func rainPercent(pop float64) int {
	return int(pop * 100)
}

func entryIcon(entry client.ForecastEntry) string {
	if len(entry.Weather) == 0 {
		return ""
	}
	return entry.Weather[0].Icon
}
