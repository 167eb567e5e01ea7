package db

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether the provided error is GORM's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
