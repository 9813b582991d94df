package api

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/models"
	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/services"
	"github.com/amanchougule09/Smart-Weather-Travel-Planner/pkg/client"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	weather *services.WeatherService
	places  *services.PlaceService
	routes  *services.RouteService
	logger  *zap.Logger
}

func NewHandler(weather *services.WeatherService, places *services.PlaceService, routes *services.RouteService, logger *zap.Logger) *Handler {
	return &Handler{
		weather: weather,
		places:  places,
		routes:  routes,
		logger:  logger,
	}
}

// GetWeather handles GET /api/v1/weather. This endpoint always answers
// 200: failures surface as an inline error_message next to an empty
// data object, mirroring how the page renders them.
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city := c.Query("city")

	report, err := h.weather.Report(c.Context(), city)
	if err != nil {
		h.logger.Error("Weather lookup failed",
			zap.String("city", city),
			zap.Error(err))

		return c.JSON(fiber.Map{
			"data":          fiber.Map{},
			"error_message": weatherErrorMessage(err),
		})
	}

	return c.JSON(fiber.Map{
		"data":          report,
		"error_message": nil,
	})
}

// weatherErrorMessage maps an aggregation failure to the user-facing
// message the page shows. An upstream-reported message (city not found,
// bad input) passes through verbatim.
func weatherErrorMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return "City not found. Please check the name and try again."
	case errors.Is(err, client.ErrUpstreamTimeout), errors.Is(err, client.ErrUpstreamUnavailable):
		return "Error fetching weather data. Please check your internet connection."
	default:
		return "An unexpected error occurred. Please try again later."
	}
}

type assistantRequest struct {
	Message string `json:"message"`
	City    string `json:"city"`
}

// Assistant handles POST /api/v1/assistant.
func (h *Handler) Assistant(c *fiber.Ctx) error {
	var req assistantRequest
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Invalid JSON",
			})
		}
	}

	message := strings.TrimSpace(req.Message)
	city := strings.TrimSpace(req.City)

	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "Message is required",
		})
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"reply": services.AssistantReply(message, city),
	})
}

// GeoSearch handles GET /api/v1/geo/search.
func (h *Handler) GeoSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "query is required",
		})
	}

	limit := c.QueryInt("limit", 5)

	results, err := h.places.Search(c.Context(), query, limit)
	if err != nil {
		h.logger.Error("Geocoding search failed",
			zap.String("query", query),
			zap.Error(err))

		if errors.Is(err, client.ErrUpstreamTimeout) || errors.Is(err, client.ErrUpstreamUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"ok":    false,
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "geocoding_failed",
		})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"results": results,
	})
}

type routeRequest struct {
	Origin      *coordinatePayload `json:"origin"`
	Destination *coordinatePayload `json:"destination"`
	Mode        string             `json:"mode"`
}

// coordinatePayload uses pointer fields so a missing lat/lng is
// distinguishable from a legitimate zero coordinate.
type coordinatePayload struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// RoutePlan handles POST /api/v1/route/plan.
func (h *Handler) RoutePlan(c *fiber.Ctx) error {
	var req routeRequest
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"ok":    false,
				"error": "Invalid JSON",
			})
		}
	}

	if req.Origin == nil || req.Destination == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "origin and destination required",
		})
	}
	if req.Origin.Lat == nil || req.Origin.Lng == nil ||
		req.Destination.Lat == nil || req.Destination.Lng == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "Invalid coordinates format",
		})
	}

	origin := models.Coordinate{Lat: *req.Origin.Lat, Lng: *req.Origin.Lng}
	destination := models.Coordinate{Lat: *req.Destination.Lat, Lng: *req.Destination.Lng}

	route, err := h.routes.Plan(c.Context(), origin, destination, req.Mode)
	if err != nil {
		h.logger.Error("Route planning failed",
			zap.String("mode", req.Mode),
			zap.Error(err))

		switch {
		case errors.Is(err, client.ErrNoRoute):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"ok":    false,
				"error": "No route found between these locations",
			})
		case errors.Is(err, client.ErrUpstreamTimeout):
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
				"ok":    false,
				"error": "Routing service timed out",
			})
		case errors.Is(err, client.ErrUpstreamUnavailable):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"ok":    false,
				"error": "Routing service unavailable",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"ok":    false,
				"error": "Unexpected routing error",
			})
		}
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"route": route,
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	})
}

// MethodNotAllowed rejects non-POST calls on the write endpoints.
func (h *Handler) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
		"ok":    false,
		"error": "Method not allowed",
	})
}

var startTime = time.Now()
