package allocate_slots

import (
	"fmt"

	"github.com/ubagofish/scheduler-service/internal/domain"
)

// validateRequest checks the request shape. Empty selections are valid
// (they produce an empty result, not an error).
func validateRequest(req *Request) error {
	if req.Interval != domain.MinIntervalMinutes && req.Interval != domain.MaxIntervalMinutes {
		return fmt.Errorf("%w: interval must be %d or %d minutes, got %d",
			ErrInvalidInput, domain.MinIntervalMinutes, domain.MaxIntervalMinutes, req.Interval)
	}

	if req.MaxConsecutive < 0 || req.MaxConsecutive > domain.MaxConsecutiveLimit {
		return fmt.Errorf("%w: maxConsecutive must be between 0 and %d, got %d",
			ErrInvalidInput, domain.MaxConsecutiveLimit, req.MaxConsecutive)
	}

	for _, day := range req.Days {
		if _, err := domain.ParseDay(string(day)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	for _, name := range append(append([]string(nil), req.Buyers...), req.Clients...) {
		if name == "" {
			return fmt.Errorf("%w: participant names must not be empty", ErrInvalidInput)
		}
	}

	return nil
}
