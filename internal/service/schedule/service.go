package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/internal/service/schedule/models"
)

// Service covers the schedule reads and the participant and deletion
// mutations that need no allocation logic.
type Service struct {
	store  Store
	logger Logger
}

// NewService creates the schedule service.
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetSchedule returns the weekly grid view: every day, every slot in the
// operating window, with lunch flags and occupants.
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleView, error) {
	view := models.BuildScheduleView(
		s.store.Buyers(),
		s.store.Clients(),
		s.store.Appointments(),
		s.store.Settings(),
	)
	return view, nil
}

// UpdateParticipants replaces the buyer and client lists. Names are
// trimmed, empties dropped and duplicates removed within each role,
// preserving input order. Appointments of removed names stay stored and
// are only removed by explicit deletes.
func (s *Service) UpdateParticipants(ctx context.Context, buyers, clients []string) (*models.ParticipantsResponse, error) {
	cleanBuyers := normalizeNames(buyers)
	cleanClients := normalizeNames(clients)

	if err := s.store.SetParticipants(cleanBuyers, cleanClients); err != nil {
		s.logger.Error("UpdateParticipants: failed to persist: %v", err)
		return nil, fmt.Errorf("%w: UpdateParticipants: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateParticipants: %d buyers, %d clients", len(cleanBuyers), len(cleanClients))
	return &models.ParticipantsResponse{
		Buyers:  cleanBuyers,
		Clients: cleanClients,
	}, nil
}

// DeleteAppointments performs one bulk delete. Locked appointments are
// removed too: explicit deletion is the one action allowed to touch them.
func (s *Service) DeleteAppointments(ctx context.Context, req *models.DeleteRequest) (*models.DeleteResponse, error) {
	var (
		removed int
		err     error
	)

	switch req.Scope {
	case models.DeleteScopeAll:
		removed, err = s.store.DeleteAll()
	case models.DeleteScopeBuyer:
		if req.Name == "" {
			return nil, fmt.Errorf("%w: buyer name is required", ErrInvalidInput)
		}
		removed, err = s.store.DeleteByBuyer(req.Name)
	case models.DeleteScopeClient:
		if req.Name == "" {
			return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
		}
		removed, err = s.store.DeleteByClient(req.Name)
	case models.DeleteScopeDay:
		day, parseErr := domain.ParseDay(req.Day)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, parseErr)
		}
		removed, err = s.store.DeleteByDay(day)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScope, req.Scope)
	}

	if err != nil {
		s.logger.Error("DeleteAppointments: scope=%s failed: %v", req.Scope, err)
		return nil, fmt.Errorf("%w: DeleteAppointments: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAppointments: scope=%s removed=%d", req.Scope, removed)
	return &models.DeleteResponse{Removed: removed}, nil
}

func normalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
