package settings

import (
	"context"
	"fmt"

	"github.com/ubagofish/scheduler-service/internal/domain"
)

// Service manages the schedule-wide settings: operating window, lunch
// blackout, selected days and per-buyer time windows.
type Service struct {
	store  Store
	logger Logger
}

// UpdateResult is the stored settings plus the number of appointments
// pruned because they fell inside the new lunch blackout.
type UpdateResult struct {
	Settings domain.Settings
	Pruned   int
}

// NewService creates the settings service.
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get returns the current settings.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	return s.store.Settings(), nil
}

// Update validates and stores new settings. Appointments that fall
// inside the new lunch window are pruned, locked ones included; the
// lunch-exclusion invariant outranks the lock, and changing the lunch
// window is an explicit user action.
func (s *Service) Update(ctx context.Context, newSettings domain.Settings) (*UpdateResult, error) {
	if err := newSettings.Validate(); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	pruned, err := s.store.SetSettings(newSettings)
	if err != nil {
		s.logger.Error("UpdateSettings: failed to persist: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings: %v", ErrInternal, err)
	}

	if pruned > 0 {
		s.logger.Warn("UpdateSettings: pruned %d appointments now inside lunch %s-%s",
			pruned, newSettings.LunchStart, newSettings.LunchEnd)
	}
	s.logger.Info("UpdateSettings: window %s-%s, lunch %s-%s, %d selected days",
		newSettings.StartHour, newSettings.EndHour, newSettings.LunchStart, newSettings.LunchEnd,
		len(newSettings.SelectedDays))

	return &UpdateResult{Settings: s.store.Settings(), Pruned: pruned}, nil
}
