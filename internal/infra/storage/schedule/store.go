package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// Logger is the logging interface used by the store
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Store holds the authoritative in-memory schedule state: participants,
// appointments and settings. Every mutation persists the whole state to
// a single JSON file (temp file + rename, last full write wins).
//
// The domain is single-actor, but the HTTP surface can see concurrent
// requests, so all state access goes through one mutex.
type Store struct {
	mu sync.Mutex

	path         string
	buyers       []string
	clients      []string
	appointments []domain.Appointment
	settings     domain.Settings

	logger Logger
}

// NewStore creates a store persisting to the given file path and loads
// the existing state. A missing file means empty state with defaults; a
// corrupt file is logged and also falls back to defaults.
func NewStore(path string, logger Logger) (*Store, error) {
	s := &Store{
		path:     path,
		settings: domain.DefaultSettings(),
		logger:   logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("Store: no state file at %s, starting with empty state", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrLoadState, s.path, err)
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("Store: state file %s is corrupt, starting with empty state: %v", s.path, err)
		return nil
	}

	s.buyers = state.Buyers
	s.clients = state.Clients
	s.appointments = state.appointments()
	s.settings = state.settings()
	s.logger.Info("Store: loaded %d appointments, %d buyers, %d clients from %s",
		len(s.appointments), len(s.buyers), len(s.clients), s.path)
	return nil
}

// save persists the whole state. Callers must hold the mutex.
func (s *Store) save() error {
	state := toPersistedState(s.buyers, s.clients, s.appointments, s.settings)
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeState, err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveState, err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveState, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveState, err)
	}
	return nil
}

// Buyers returns a copy of the buyer list.
func (s *Store) Buyers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.buyers...)
}

// Clients returns a copy of the client list.
func (s *Store) Clients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.clients...)
}

// Appointments returns a copy of all appointments.
func (s *Store) Appointments() []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Appointment(nil), s.appointments...)
}

// Settings returns the current schedule settings.
func (s *Store) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySettings(s.settings)
}

// IsSlotFree reports whether no stored appointment at that day and slot
// shares either the client or the buyer.
func (s *Store) IsSlotFree(client, buyer string, day domain.Day, slot types.TimeString) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	probe := domain.Appointment{Client: client, Buyer: buyer, Day: day, Slot: slot}
	for _, a := range s.appointments {
		if a.ConflictsWith(probe) {
			return false
		}
	}
	return true
}

// Exists reports whether the exact (client, buyer, day, slot) tuple is
// already stored, regardless of lock flag.
func (s *Store) Exists(appt domain.Appointment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.Client == appt.Client && a.Buyer == appt.Buyer && a.Day == appt.Day && a.Slot == appt.Slot {
			return true
		}
	}
	return false
}

// Add stores one appointment, enforcing the double-booking invariant.
func (s *Store) Add(appt domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.Client == appt.Client && a.Buyer == appt.Buyer && a.Day == appt.Day && a.Slot == appt.Slot {
			return ErrAppointmentExists
		}
		if a.ConflictsWith(appt) {
			return ErrSlotTaken
		}
	}
	s.appointments = append(s.appointments, appt)
	return s.save()
}

// ReplaceUnlocked commits one allocator run: unlocked appointments whose
// buyer, client and day are all in the targeted sets are removed and the
// allocation result is appended, in a single atomic step. Locked
// appointments and everything outside the targeted sets survive as is.
func (s *Store) ReplaceUnlocked(buyers, clients map[string]bool, days map[domain.Day]bool, result []domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.appointments[:0]
	for _, a := range s.appointments {
		if !a.Locked && buyers[a.Buyer] && clients[a.Client] && days[a.Day] {
			continue
		}
		kept = append(kept, a)
	}
	s.appointments = append(kept, result...)
	return s.save()
}

// DeleteAll removes every appointment and returns the removed count.
func (s *Store) DeleteAll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := len(s.appointments)
	s.appointments = nil
	return removed, s.save()
}

// DeleteByBuyer removes every appointment of the named buyer.
func (s *Store) DeleteByBuyer(buyer string) (int, error) {
	return s.deleteWhere(func(a domain.Appointment) bool { return a.Buyer == buyer })
}

// DeleteByClient removes every appointment of the named client.
func (s *Store) DeleteByClient(client string) (int, error) {
	return s.deleteWhere(func(a domain.Appointment) bool { return a.Client == client })
}

// DeleteByDay removes every appointment on the given day.
func (s *Store) DeleteByDay(day domain.Day) (int, error) {
	return s.deleteWhere(func(a domain.Appointment) bool { return a.Day == day })
}

func (s *Store) deleteWhere(match func(domain.Appointment) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.appointments[:0]
	removed := 0
	for _, a := range s.appointments {
		if match(a) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.appointments = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, s.save()
}

// SetParticipants replaces both name lists.
func (s *Store) SetParticipants(buyers, clients []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buyers = append([]string(nil), buyers...)
	s.clients = append([]string(nil), clients...)
	return s.save()
}

// SetSettings replaces the schedule settings and prunes every
// appointment that now falls inside the lunch blackout, locked ones
// included: changing the lunch window is an explicit user action.
// Returns the number of pruned appointments.
func (s *Store) SetSettings(settings domain.Settings) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = copySettings(settings)
	grid := domain.NewGrid(s.settings)

	kept := s.appointments[:0]
	pruned := 0
	for _, a := range s.appointments {
		if grid.InLunch(a.Slot) {
			pruned++
			continue
		}
		kept = append(kept, a)
	}
	s.appointments = kept
	return pruned, s.save()
}

func copySettings(settings domain.Settings) domain.Settings {
	out := settings
	out.SelectedDays = append([]domain.Day(nil), settings.SelectedDays...)
	out.TimeWindows = make(map[string]map[domain.Day]domain.TimeWindow, len(settings.TimeWindows))
	for buyer, days := range settings.TimeWindows {
		copied := make(map[domain.Day]domain.TimeWindow, len(days))
		for day, w := range days {
			copied[day] = w
		}
		out.TimeWindows[buyer] = copied
	}
	return out
}
