package store

import (
	"context"

	"gorm.io/gorm"

	"campus_transport/internal/models"
)

func (s *gormStore) BusByID(ctx context.Context, id uint) (*models.Bus, error) {
	var bus models.Bus
	if err := s.db.WithContext(ctx).First(&bus, id).Error; err != nil {
		return nil, err
	}
	return &bus, nil
}

func (s *gormStore) BusByDriverID(ctx context.Context, driverID uint) (*models.Bus, error) {
	var bus models.Bus
	if err := s.db.WithContext(ctx).Where("driver_id = ?", driverID).First(&bus).Error; err != nil {
		return nil, err
	}
	return &bus, nil
}

// ListBuses returns all buses ordered by bus number, each annotated with its
// route and driver names where those references still resolve.
func (s *gormStore) ListBuses(ctx context.Context) ([]BusListing, error) {
	var buses []models.Bus
	if err := s.db.WithContext(ctx).Order("bus_number").Find(&buses).Error; err != nil {
		return nil, err
	}

	var routes []models.Route
	if err := s.db.WithContext(ctx).Find(&routes).Error; err != nil {
		return nil, err
	}
	routeNames := make(map[uint]string, len(routes))
	for _, r := range routes {
		routeNames[r.ID] = r.RouteName
	}

	var drivers []models.Driver
	if err := s.db.WithContext(ctx).Find(&drivers).Error; err != nil {
		return nil, err
	}
	driverNames := make(map[uint]string, len(drivers))
	for _, d := range drivers {
		driverNames[d.ID] = d.Name
	}

	listings := make([]BusListing, 0, len(buses))
	for _, b := range buses {
		entry := BusListing{Bus: b}
		if b.RouteID != nil {
			entry.RouteName = routeNames[*b.RouteID]
		}
		if b.DriverID != nil {
			entry.DriverName = driverNames[*b.DriverID]
		}
		listings = append(listings, entry)
	}
	return listings, nil
}

func (s *gormStore) CreateBus(ctx context.Context, bus *models.Bus) error {
	return s.db.WithContext(ctx).Create(bus).Error
}

func (s *gormStore) SaveBus(ctx context.Context, bus *models.Bus) error {
	return s.db.WithContext(ctx).Save(bus).Error
}

// DeleteBus removes the bus only. Students assigned to it keep their bus_id;
// their profile views degrade to "no bus" rather than failing.
func (s *gormStore) DeleteBus(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&models.Bus{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
