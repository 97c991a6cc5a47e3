package dberrors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IsDuplicateKey reports whether err is a unique-constraint violation from
// the store. Uniqueness is enforced at write time, not pre-checked, so this
// is the only conflict-detection mechanism; callers map it to a user-facing
// "already exists" outcome.
//
// Postgres surfaces code 23505 through lib/pq; gorm translates it to
// ErrDuplicatedKey when error translation is on; the sqlite driver used in
// tests reports the constraint in the message text.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
