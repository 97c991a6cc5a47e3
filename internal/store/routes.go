package store

import (
	"context"

	"gorm.io/gorm"

	"campus_transport/internal/models"
)

func (s *gormStore) RouteByID(ctx context.Context, id uint) (*models.Route, error) {
	var route models.Route
	if err := s.db.WithContext(ctx).First(&route, id).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func (s *gormStore) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	if err := s.db.WithContext(ctx).Order("route_name").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

func (s *gormStore) CreateRoute(ctx context.Context, route *models.Route) error {
	return s.db.WithContext(ctx).Create(route).Error
}

func (s *gormStore) SaveRoute(ctx context.Context, route *models.Route) error {
	return s.db.WithContext(ctx).Save(route).Error
}

// DeleteRoute removes the route only. Buses referencing it keep their
// route_id; readers treat the dangling value as "no route".
func (s *gormStore) DeleteRoute(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&models.Route{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
