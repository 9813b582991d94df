package services

import (
	"context"

	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/models"
	"github.com/amanchougule09/Smart-Weather-Travel-Planner/pkg/client"
	"go.uber.org/zap"
)

const defaultTravelMode = "driving"

// RouteProvider is the slice of the OSRM client the planner needs.
type RouteProvider interface {
	Route(ctx context.Context, profile string, origin, destination models.Coordinate) (*client.OSRMRoute, error)
}

// RouteService plans a single best route between two coordinates.
type RouteService struct {
	provider RouteProvider
	logger   *zap.Logger
}

func NewRouteService(provider RouteProvider, logger *zap.Logger) *RouteService {
	return &RouteService{provider: provider, logger: logger}
}

// Plan asks the routing provider for the best route in the given travel
// mode (driving when unset) and keeps only the first candidate.
func (s *RouteService) Plan(ctx context.Context, origin, destination models.Coordinate, mode string) (*models.RouteSummary, error) {
	if mode == "" {
		mode = defaultTravelMode
	}

	route, err := s.provider.Route(ctx, mode, origin, destination)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Route planned",
		zap.String("mode", mode),
		zap.Float64("distance_m", route.Distance),
		zap.Float64("duration_s", route.Duration))

	return &models.RouteSummary{
		DistanceM: route.Distance,
		DurationS: route.Duration,
		Geometry:  route.Geometry,
	}, nil
}
