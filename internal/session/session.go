// Package session issues and resolves the portal's session tokens. The token
// handed to clients is a signed JWT that points at a server-side session row;
// revoking the row kills the token no matter how long the signature stays
// valid.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/models"
	"campus_transport/internal/store"
)

// Started is what a successful login hands back to the client: the bearer
// token plus the anti-forgery token mutating requests must echo.
type Started struct {
	Token     string `json:"token"`
	CSRFToken string `json:"csrf_token"`
}

type Manager struct {
	store  store.Store
	secret []byte
	ttl    time.Duration
}

func NewManager(st store.Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: st, secret: []byte(secret), ttl: ttl}
}

// Create establishes a session for the identity: one server-side row with a
// fresh anti-forgery token, and a signed bearer token referencing it. The
// role is fixed here and never changes for the session's lifetime.
func (m *Manager) Create(ctx context.Context, identity models.Identity) (*Started, error) {
	sid, err := randomHex(16)
	if err != nil {
		return nil, fmt.Errorf("could not generate session id: %w", err)
	}
	csrfToken, err := randomHex(16)
	if err != nil {
		return nil, fmt.Errorf("could not generate csrf token: %w", err)
	}

	sess := &models.Session{
		SID:       sid,
		UserID:    identity.UserID,
		Role:      identity.Role,
		Name:      identity.Name,
		CSRFToken: csrfToken,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("could not persist session: %w", err)
	}

	claims := jwt.MapClaims{
		"sid":     sid,
		"user_id": identity.UserID,
		"role":    string(identity.Role),
		"exp":     sess.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("could not sign token: %w", err)
	}
	return &Started{Token: signed, CSRFToken: csrfToken}, nil
}

// Resolve maps a bearer token back to its session. Tampered, expired and
// revoked tokens all come back as ErrSessionInvalid.
func (m *Manager) Resolve(ctx context.Context, tokenStr string) (*models.Session, error) {
	sid, err := m.sidFromToken(tokenStr)
	if err != nil {
		return nil, apperrors.ErrSessionInvalid
	}

	sess, err := m.store.SessionBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionInvalid
		}
		return nil, err
	}
	if sess.Revoked || time.Now().After(sess.ExpiresAt) {
		return nil, apperrors.ErrSessionInvalid
	}
	return sess, nil
}

// Destroy revokes the session behind the token. Destroying an already-dead
// token is not an error.
func (m *Manager) Destroy(ctx context.Context, tokenStr string) error {
	sid, err := m.sidFromToken(tokenStr)
	if err != nil {
		return apperrors.ErrSessionInvalid
	}
	if err := m.store.RevokeSession(ctx, sid); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (m *Manager) sidFromToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrSessionInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.ErrSessionInvalid
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", apperrors.ErrSessionInvalid
	}
	return sid, nil
}

// randomHex returns a random hex string of byteLen bytes.
func randomHex(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
