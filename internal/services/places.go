package services

import (
	"context"
	"strconv"

	"github.com/amanchougule09/Smart-Weather-Travel-Planner/internal/models"
	"github.com/amanchougule09/Smart-Weather-Travel-Planner/pkg/client"
	"go.uber.org/zap"
)

// Geocoder is the slice of the Nominatim client the place search needs.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]client.NominatimPlace, error)
}

// PlaceService turns raw geocoding results into normalized places.
type PlaceService struct {
	geocoder Geocoder
	logger   *zap.Logger
}

func NewPlaceService(geocoder Geocoder, logger *zap.Logger) *PlaceService {
	return &PlaceService{geocoder: geocoder, logger: logger}
}

// Search geocodes a free-text query. Results whose coordinates do not
// parse as numbers are skipped rather than failing the whole request.
func (s *PlaceService) Search(ctx context.Context, query string, limit int) ([]models.Place, error) {
	raw, err := s.geocoder.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	places := make([]models.Place, 0, len(raw))
	for _, item := range raw {
		lat, err := strconv.ParseFloat(item.Lat, 64)
		if err != nil {
			s.logger.Debug("Skipping place with unparseable latitude",
				zap.String("name", item.DisplayName),
				zap.String("lat", item.Lat))
			continue
		}
		lng, err := strconv.ParseFloat(item.Lon, 64)
		if err != nil {
			s.logger.Debug("Skipping place with unparseable longitude",
				zap.String("name", item.DisplayName),
				zap.String("lon", item.Lon))
			continue
		}

		places = append(places, models.Place{
			Name:  item.DisplayName,
			Lat:   lat,
			Lng:   lng,
			Type:  item.Type,
			Class: item.Class,
		})
	}

	return places, nil
}
