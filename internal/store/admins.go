package store

import (
	"context"

	"campus_transport/internal/models"
)

func (s *gormStore) AdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *gormStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Create(admin).Error
}

func (s *gormStore) AdminCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Counts feeds the admin dashboard summary.
func (s *gormStore) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.Student{}).Count(&c.Students).Error; err != nil {
		return Counts{}, err
	}
	if err := db.Model(&models.Bus{}).Count(&c.Buses).Error; err != nil {
		return Counts{}, err
	}
	if err := db.Model(&models.Driver{}).Count(&c.Drivers).Error; err != nil {
		return Counts{}, err
	}
	if err := db.Model(&models.Route{}).Count(&c.Routes).Error; err != nil {
		return Counts{}, err
	}
	return c, nil
}
