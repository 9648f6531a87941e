package usecase

import (
	"errors"
	"fmt"

	"placement-engine/internal/domain/matching"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidConfig   = errors.New("configuration error")
	ErrStudentNotFound = errors.New("student not found")
	ErrJobNotFound     = errors.New("job not found")
	ErrInternal        = errors.New("internal error")
)

// engineError translates engine sentinels into usecase sentinels, keeping
// the engine message.
func engineError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, matching.ErrInvalidConfig):
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	case errors.Is(err, matching.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return ErrInternal
	}
}
