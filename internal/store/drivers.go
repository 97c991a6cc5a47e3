package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus_transport/internal/models"
)

func (s *gormStore) DriverByID(ctx context.Context, id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := s.db.WithContext(ctx).First(&driver, id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *gormStore) DriverByContact(ctx context.Context, contact string) (*models.Driver, error) {
	var driver models.Driver
	if err := s.db.WithContext(ctx).Where("contact = ?", contact).First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *gormStore) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := s.db.WithContext(ctx).Order("name").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *gormStore) CreateDriver(ctx context.Context, driver *models.Driver) error {
	return s.db.WithContext(ctx).Create(driver).Error
}

func (s *gormStore) SaveDriver(ctx context.Context, driver *models.Driver) error {
	return s.db.WithContext(ctx).Save(driver).Error
}

func (s *gormStore) DeleteDriver(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&models.Driver{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DriverProfile resolves the bus assigned to this driver, that bus's route,
// and the roster of students on the bus ordered by name. A driver with no bus
// gets an empty profile, not an error.
func (s *gormStore) DriverProfile(ctx context.Context, driverID uint) (*DriverProfile, error) {
	profile := &DriverProfile{Roster: []models.Student{}}

	bus, err := s.BusByDriverID(ctx, driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile, nil
		}
		return nil, err
	}
	profile.Bus = bus

	if bus.RouteID != nil {
		route, err := s.RouteByID(ctx, *bus.RouteID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile.Route = route
	}

	roster, err := s.StudentsByBusID(ctx, bus.ID)
	if err != nil {
		return nil, err
	}
	profile.Roster = roster
	return profile, nil
}
