package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a row addressed by id (or date) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a uniqueness constraint rejects a write.
	ErrAlreadyExists = errors.New("already exists")

	ErrDuplicatePeriod     = fmt.Errorf("%w: meal period", ErrAlreadyExists)
	ErrDuplicateAttendance = fmt.Errorf("%w: attendance for this user and meal", ErrAlreadyExists)
	ErrDuplicateMenuItem   = fmt.Errorf("%w: menu item", ErrAlreadyExists)
	ErrUsernameTaken       = fmt.Errorf("%w: username", ErrAlreadyExists)
)
