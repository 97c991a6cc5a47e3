package service

import (
	"context"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/models"
	"campus_transport/internal/store"
)

// ProfileService serves the own-profile views. Each view is keyed strictly by
// the caller's identity; there is no parameter through which another user's
// data can be requested.
type ProfileService struct {
	store store.Store
}

// StudentProfile returns the calling student's joined record: their bus, its
// route and its driver. Broken links in the chain render as absent, not as
// errors.
func (s *ProfileService) StudentProfile(ctx context.Context, identity models.Identity) (*store.StudentProfile, error) {
	if identity.Role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.store.StudentProfile(ctx, identity.UserID)
}

// DriverProfile returns the calling driver's assigned bus, its route and the
// roster of students on that bus ordered by name.
func (s *ProfileService) DriverProfile(ctx context.Context, identity models.Identity) (*store.DriverProfile, error) {
	if identity.Role != models.RoleDriver {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.store.DriverProfile(ctx, identity.UserID)
}
