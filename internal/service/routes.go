package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/models"
	"campus_transport/internal/store"
)

// RouteService is the admin-scoped CRUD surface for routes.
type RouteService struct {
	store store.Store
}

type RouteInput struct {
	RouteName string `json:"route_name" binding:"required"`
	Stops     string `json:"stops"`
	Timings   string `json:"timings"`
}

func (s *RouteService) List(ctx context.Context) ([]models.Route, error) {
	return s.store.ListRoutes(ctx)
}

func (s *RouteService) Create(ctx context.Context, in RouteInput) (*models.Route, error) {
	route := &models.Route{
		RouteName: in.RouteName,
		Stops:     in.Stops,
		Timings:   in.Timings,
	}
	if err := s.store.CreateRoute(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *RouteService) Update(ctx context.Context, id uint, in RouteInput) (*models.Route, error) {
	route, err := s.store.RouteByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRouteNotFound
		}
		return nil, err
	}

	route.RouteName = in.RouteName
	route.Stops = in.Stops
	route.Timings = in.Timings

	if err := s.store.SaveRoute(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

// Delete removes the route row only; buses referencing it go dangling.
func (s *RouteService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteRoute(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRouteNotFound
		}
		return err
	}
	return nil
}
