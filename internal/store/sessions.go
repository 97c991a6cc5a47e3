package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"campus_transport/internal/models"
)

func (s *gormStore) CreateSession(ctx context.Context, session *models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *gormStore) SessionBySID(ctx context.Context, sid string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).Where("sid = ?", sid).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *gormStore) RevokeSession(ctx context.Context, sid string) error {
	res := s.db.WithContext(ctx).Model(&models.Session{}).
		Where("sid = ?", sid).
		Update("revoked", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeExpiredSessions is startup housekeeping; sessions past their expiry
// carry no further meaning.
func (s *gormStore) PurgeExpiredSessions(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{}).Error
}
