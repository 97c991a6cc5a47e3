package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/dberrors"
	"campus_transport/internal/models"
	"campus_transport/internal/store"
)

// BusService is the admin-scoped CRUD surface for buses.
type BusService struct {
	store store.Store
}

type BusInput struct {
	BusNumber string `json:"bus_number" binding:"required"`
	RouteID   *uint  `json:"route_id"`
	DriverID  *uint  `json:"driver_id"`
	Capacity  int    `json:"capacity"`
}

func (s *BusService) List(ctx context.Context) ([]store.BusListing, error) {
	return s.store.ListBuses(ctx)
}

func (s *BusService) Create(ctx context.Context, in BusInput) (*models.Bus, error) {
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	bus := &models.Bus{
		BusNumber: in.BusNumber,
		RouteID:   in.RouteID,
		DriverID:  in.DriverID,
		Capacity:  in.Capacity,
	}
	if err := s.store.CreateBus(ctx, bus); err != nil {
		if dberrors.IsDuplicateKey(err) {
			return nil, apperrors.ErrBusNumberExists
		}
		return nil, err
	}
	return bus, nil
}

func (s *BusService) Update(ctx context.Context, id uint, in BusInput) (*models.Bus, error) {
	bus, err := s.store.BusByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBusNotFound
		}
		return nil, err
	}
	if err := s.checkReferences(ctx, in); err != nil {
		return nil, err
	}

	bus.BusNumber = in.BusNumber
	bus.RouteID = in.RouteID
	bus.DriverID = in.DriverID
	bus.Capacity = in.Capacity

	if err := s.store.SaveBus(ctx, bus); err != nil {
		if dberrors.IsDuplicateKey(err) {
			return nil, apperrors.ErrBusNumberExists
		}
		return nil, err
	}
	return bus, nil
}

// Delete removes the bus row only. Students keep their bus_id; their reads
// degrade to an empty bus rather than failing.
func (s *BusService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteBus(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBusNotFound
		}
		return err
	}
	return nil
}

// checkReferences validates the route and driver assignments at write time.
// Later deletes of either are free to leave this bus dangling.
func (s *BusService) checkReferences(ctx context.Context, in BusInput) error {
	if in.RouteID != nil {
		if _, err := s.store.RouteByID(ctx, *in.RouteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRouteNotFound
			}
			return err
		}
	}
	if in.DriverID != nil {
		if _, err := s.store.DriverByID(ctx, *in.DriverID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDriverNotFound
			}
			return err
		}
	}
	return nil
}
