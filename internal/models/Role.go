package models

import (
	"errors"
	"strings"
)

// Role is the closed set of identities the portal recognises. A session
// carries exactly one role for its whole lifetime.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleDriver  Role = "driver"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole normalizes and validates a role supplied at the request boundary.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStudent:
		return RoleStudent, nil
	case RoleDriver:
		return RoleDriver, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }
