package create_appointment

import (
	"fmt"

	"github.com/ubagofish/scheduler-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.Client == "" {
		return fmt.Errorf("%w: client is required", ErrInvalidInput)
	}
	if req.Buyer == "" {
		return fmt.Errorf("%w: buyer is required", ErrInvalidInput)
	}
	if _, err := domain.ParseDay(string(req.Day)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Slot == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}
	return nil
}
