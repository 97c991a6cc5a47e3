package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus_transport/internal/models"
)

func (s *gormStore) StudentByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *gormStore) StudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("roll_number = ?", rollNumber).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *gormStore) StudentsByBusID(ctx context.Context, busID uint) ([]models.Student, error) {
	var students []models.Student
	err := s.db.WithContext(ctx).Where("bus_id = ?", busID).Order("name").Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// ListStudents returns all students ordered by name, each carrying its bus
// number when the assigned bus still exists.
func (s *gormStore) ListStudents(ctx context.Context) ([]StudentListing, error) {
	var students []models.Student
	if err := s.db.WithContext(ctx).Order("name").Find(&students).Error; err != nil {
		return nil, err
	}

	var buses []models.Bus
	if err := s.db.WithContext(ctx).Find(&buses).Error; err != nil {
		return nil, err
	}
	numbers := make(map[uint]string, len(buses))
	for _, b := range buses {
		numbers[b.ID] = b.BusNumber
	}

	listings := make([]StudentListing, 0, len(students))
	for _, st := range students {
		entry := StudentListing{Student: st}
		if st.BusID != nil {
			entry.BusNumber = numbers[*st.BusID] // stays empty on a dangling reference
		}
		listings = append(listings, entry)
	}
	return listings, nil
}

func (s *gormStore) CreateStudent(ctx context.Context, student *models.Student) error {
	return s.db.WithContext(ctx).Create(student).Error
}

func (s *gormStore) SaveStudent(ctx context.Context, student *models.Student) error {
	return s.db.WithContext(ctx).Save(student).Error
}

func (s *gormStore) DeleteStudent(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&models.Student{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// StudentProfile walks student → bus → route/driver, dropping any link whose
// target is null or no longer exists.
func (s *gormStore) StudentProfile(ctx context.Context, studentID uint) (*StudentProfile, error) {
	student, err := s.StudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	profile := &StudentProfile{Student: *student}
	if student.BusID == nil {
		return profile, nil
	}

	bus, err := s.BusByID(ctx, *student.BusID)
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
	if bus.DriverID != nil {
		driver, err := s.DriverByID(ctx, *bus.DriverID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile.Driver = driver
	}
	return profile, nil
}
