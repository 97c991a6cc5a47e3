package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/models"
	"campus_transport/internal/store"
)

// DriverService is the admin-scoped CRUD surface for drivers.
type DriverService struct {
	store store.Store
}

type DriverInput struct {
	Name     string `json:"name" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Password string `json:"password"`
}

func (s *DriverService) List(ctx context.Context) ([]models.Driver, error) {
	return s.store.ListDrivers(ctx)
}

func (s *DriverService) Create(ctx context.Context, in DriverInput) (*models.Driver, error) {
	if strings.TrimSpace(in.Password) == "" {
		return nil, apperrors.ErrPasswordRequired
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	driver := &models.Driver{
		Name:     in.Name,
		Contact:  in.Contact,
		Password: hash,
	}
	if err := s.store.CreateDriver(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Update edits the row in place; a blank password keeps the stored hash.
func (s *DriverService) Update(ctx context.Context, id uint, in DriverInput) (*models.Driver, error) {
	driver, err := s.store.DriverByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, err
	}

	driver.Name = in.Name
	driver.Contact = in.Contact
	if strings.TrimSpace(in.Password) != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("could not hash password: %w", err)
		}
		driver.Password = hash
	}

	if err := s.store.SaveDriver(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Delete removes the driver row only; buses referencing it go dangling.
func (s *DriverService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteDriver(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDriverNotFound
		}
		return err
	}
	return nil
}
