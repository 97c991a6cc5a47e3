package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/models"
	"campus_transport/internal/session"
	"campus_transport/internal/store"
)

// AuthService resolves role-scoped credentials and establishes sessions.
type AuthService struct {
	store    store.Store
	sessions *session.Manager
}

// LoginResult carries the established session tokens and the resolved
// identity for the response payload.
type LoginResult struct {
	Token     string      `json:"token"`
	CSRFToken string      `json:"csrf_token"`
	UserID    uint        `json:"user_id"`
	Role      models.Role `json:"role"`
	Name      string      `json:"name"`
}

// Login authenticates an identifier against the table its role selects:
// admins by username, students by roll number, drivers by contact. Every
// failure path collapses into ErrInvalidCredentials so a caller cannot tell
// an unknown identifier from a wrong password.
func (s *AuthService) Login(ctx context.Context, role models.Role, identifier, password string) (*LoginResult, error) {
	if identifier == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	var (
		userID uint
		name   string
		hash   string
	)
	found := true
	switch role {
	case models.RoleAdmin:
		admin, err := s.store.AdminByUsername(ctx, identifier)
		if err != nil {
			if found, err = lookupMiss(err); err != nil {
				return nil, err
			}
		} else {
			userID, name, hash = admin.ID, admin.Username, admin.Password
		}
	case models.RoleStudent:
		student, err := s.store.StudentByRollNumber(ctx, identifier)
		if err != nil {
			if found, err = lookupMiss(err); err != nil {
				return nil, err
			}
		} else {
			userID, name, hash = student.ID, student.Name, student.Password
		}
	case models.RoleDriver:
		driver, err := s.store.DriverByContact(ctx, identifier)
		if err != nil {
			if found, err = lookupMiss(err); err != nil {
				return nil, err
			}
		} else {
			userID, name, hash = driver.ID, driver.Name, driver.Password
		}
	default:
		return nil, apperrors.ErrInvalidCredentials
	}

	// An unknown identifier still pays for a hash comparison so the two
	// failure modes take the same time.
	if !found {
		hash = dummyHash
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil || !found {
		return nil, apperrors.ErrInvalidCredentials
	}

	identity := models.Identity{UserID: userID, Role: role, Name: name}
	started, err := s.sessions.Create(ctx, identity)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"role": role, "user_id": userID}).Info("login")

	return &LoginResult{
		Token:     started.Token,
		CSRFToken: started.CSRFToken,
		UserID:    userID,
		Role:      role,
		Name:      name,
	}, nil
}

// Logout revokes the session behind the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// dummyHash is a valid bcrypt hash of no credential in the system; it is
// only ever compared against, never matched on.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// lookupMiss turns a not-found lookup into a miss and passes every other
// error through.
func lookupMiss(err error) (bool, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
