package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/dberrors"
	"campus_transport/internal/models"
	"campus_transport/internal/store"
)

// StudentService is the admin-scoped CRUD surface for students.
type StudentService struct {
	store store.Store
}

type StudentInput struct {
	Name       string `json:"name"`
	RollNumber string `json:"roll_number" binding:"required"`
	Password   string `json:"password"`
	BusID      *uint  `json:"bus_id"`
}

func (s *StudentService) List(ctx context.Context) ([]store.StudentListing, error) {
	return s.store.ListStudents(ctx)
}

// Create inserts a student with a hashed password. The password is required
// here (unlike edit, where blank means "keep"). Roll-number uniqueness is
// enforced by the store at write time.
func (s *StudentService) Create(ctx context.Context, in StudentInput) (*models.Student, error) {
	if strings.TrimSpace(in.Password) == "" {
		return nil, apperrors.ErrPasswordRequired
	}
	if err := s.checkBus(ctx, in.BusID); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	student := &models.Student{
		Name:       in.Name,
		RollNumber: in.RollNumber,
		Password:   hash,
		BusID:      in.BusID,
	}
	if err := s.store.CreateStudent(ctx, student); err != nil {
		if dberrors.IsDuplicateKey(err) {
			return nil, apperrors.ErrRollNumberExists
		}
		return nil, err
	}
	return student, nil
}

// Update edits the row in place. A blank password leaves the stored hash
// unchanged.
func (s *StudentService) Update(ctx context.Context, id uint, in StudentInput) (*models.Student, error) {
	student, err := s.store.StudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	if err := s.checkBus(ctx, in.BusID); err != nil {
		return nil, err
	}

	student.Name = in.Name
	student.RollNumber = in.RollNumber
	student.BusID = in.BusID
	if strings.TrimSpace(in.Password) != "" {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("could not hash password: %w", err)
		}
		student.Password = hash
	}

	if err := s.store.SaveStudent(ctx, student); err != nil {
		if dberrors.IsDuplicateKey(err) {
			return nil, apperrors.ErrRollNumberExists
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteStudent(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}
	return nil
}

// checkBus validates a bus assignment at write time. Dangling references can
// still arise later through bus deletion; only the initial assignment is
// checked.
func (s *StudentService) checkBus(ctx context.Context, busID *uint) error {
	if busID == nil {
		return nil
	}
	if _, err := s.store.BusByID(ctx, *busID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBusNotFound
		}
		return err
	}
	return nil
}
