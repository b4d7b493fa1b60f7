package allocate_slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakeStore mimics the storage commit semantics in memory.
type fakeStore struct {
	appointments []domain.Appointment
	settings     domain.Settings
	commits      int
	replaceErr   error
}

func (f *fakeStore) Appointments() []domain.Appointment {
	return append([]domain.Appointment(nil), f.appointments...)
}

func (f *fakeStore) Settings() domain.Settings {
	return f.settings
}

func (f *fakeStore) ReplaceUnlocked(buyers, clients map[string]bool, days map[domain.Day]bool, result []domain.Appointment) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.commits++
	kept := make([]domain.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		if !a.Locked && buyers[a.Buyer] && clients[a.Client] && days[a.Day] {
			continue
		}
		kept = append(kept, a)
	}
	f.appointments = append(kept, result...)
	return nil
}

func allocatorSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.StartHour = "08:00"
	s.EndHour = "18:00"
	s.LunchStart = "12:00"
	s.LunchEnd = "14:00"
	return s
}

func newTestUseCase(store *fakeStore) *UseCase {
	return NewUseCase(store, noopLogger{})
}

func slotsOf(appts []domain.Appointment) []types.TimeString {
	slots := make([]types.TimeString, len(appts))
	for i, a := range appts {
		slots[i] = a.Slot
	}
	return slots
}

func TestExecuteEmptyStore(t *testing.T) {
	store := &fakeStore{settings: allocatorSettings()}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1"},
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	require.NoError(t, err)

	// The earliest free slot wins.
	require.Len(t, resp.Placed, 1)
	assert.Equal(t, domain.Appointment{Client: "C1", Buyer: "B1", Day: domain.Monday, Slot: "08:00"}, resp.Placed[0])
	assert.Equal(t, DaySummary{Added: 1}, resp.Summaries[domain.Monday])
	assert.Equal(t, DaySummary{Added: 1}, resp.Total)
	assert.Equal(t, resp.Placed, store.appointments)
}

func TestExecuteLockedSlotOccupied(t *testing.T) {
	locked := domain.Appointment{Client: "C1", Buyer: "B1", Day: domain.Monday, Slot: "08:00", Locked: true}
	store := &fakeStore{settings: allocatorSettings(), appointments: []domain.Appointment{locked}}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1"},
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	require.NoError(t, err)

	require.Len(t, resp.Placed, 1)
	assert.EqualValues(t, "08:30", resp.Placed[0].Slot)
	assert.Equal(t, DaySummary{Added: 1}, resp.Total)

	// The locked appointment survives unchanged.
	assert.Contains(t, store.appointments, locked)
	assert.Len(t, store.appointments, 2)
}

func TestExecuteTimeWindowSkip(t *testing.T) {
	settings := allocatorSettings()
	settings.TimeWindows = map[string]map[domain.Day]domain.TimeWindow{
		"B1": {domain.Monday: {Start: "09:00", End: "09:30"}},
	}
	store := &fakeStore{settings: settings}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1", "C2"},
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	require.NoError(t, err)

	// A single candidate slot fits one client; the other is skipped,
	// not silently defaulted anywhere.
	require.Len(t, resp.Placed, 1)
	assert.EqualValues(t, "09:00", resp.Placed[0].Slot)
	assert.Equal(t, DaySummary{Added: 1, Skipped: 1}, resp.Summaries[domain.Monday])
}

func TestExecuteDisjointWindowSkipsAll(t *testing.T) {
	settings := allocatorSettings()
	settings.TimeWindows = map[string]map[domain.Day]domain.TimeWindow{
		"B1": {domain.Monday: {Start: "19:00", End: "21:00"}},
	}
	store := &fakeStore{settings: settings}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1", "C2"},
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Placed)
	assert.Equal(t, DaySummary{Skipped: 2}, resp.Summaries[domain.Monday])
}

func TestExecuteKeepsPreviousSlot(t *testing.T) {
	prev := domain.Appointment{Client: "C1", Buyer: "B1", Day: domain.Monday, Slot: "10:00"}
	store := &fakeStore{settings: allocatorSettings(), appointments: []domain.Appointment{prev}}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1"},
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	require.NoError(t, err)

	require.Len(t, resp.Placed, 1)
	assert.EqualValues(t, "10:00", resp.Placed[0].Slot)
	assert.Equal(t, DaySummary{Kept: 1}, resp.Total)
	assert.Equal(t, []domain.Appointment{prev}, store.appointments)
}

func TestExecuteMovesDisplacedPairing(t *testing.T) {
	// The previous slot fell out of the buyer's time window, so the
	// pairing is relocated to the first remaining candidate.
	settings := allocatorSettings()
	settings.TimeWindows = map[string]map[domain.Day]domain.TimeWindow{
		"B1": {domain.Monday: {Start: "10:00", End: "12:00"}},
	}
	prev := domain.Appointment{Client: "C1", Buyer: "B1", Day: domain.Monday, Slot: "08:00"}
	store := &fakeStore{settings: settings, appointments: []domain.Appointment{prev}}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1"},
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	require.NoError(t, err)

	require.Len(t, resp.Placed, 1)
	assert.EqualValues(t, "10:00", resp.Placed[0].Slot)
	assert.Equal(t, DaySummary{Moved: 1}, resp.Total)
}

func TestExecuteEmptySelectionIsNoOp(t *testing.T) {
	existing := domain.Appointment{Client: "C1", Buyer: "B1", Day: domain.Monday, Slot: "08:00"}
	store := &fakeStore{settings: allocatorSettings(), appointments: []domain.Appointment{existing}}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  nil,
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Placed)
	assert.Equal(t, DaySummary{}, resp.Total)
	assert.Empty(t, resp.Summaries)
	assert.Zero(t, store.commits)
	assert.Equal(t, []domain.Appointment{existing}, store.appointments)
}

func TestExecuteLockedInvariance(t *testing.T) {
	locked := []domain.Appointment{
		{Client: "C1", Buyer: "B1", Day: domain.Monday, Slot: "09:00", Locked: true},
		{Client: "C2", Buyer: "B1", Day: domain.Tuesday, Slot: "15:00", Locked: true},
		{Client: "C3", Buyer: "B2", Day: domain.Monday, Slot: "09:00", Locked: true},
	}
	store := &fakeStore{settings: allocatorSettings(), appointments: append([]domain.Appointment(nil), locked...)}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1", "B2"},
		Clients:  []string{"C1", "C2", "C3"},
		Days:     []domain.Day{domain.Monday, domain.Tuesday},
		Interval: 30,
	})
	require.NoError(t, err)

	for _, a := range locked {
		assert.Contains(t, store.appointments, a)
	}
}

func TestExecuteNoDoubleBooking(t *testing.T) {
	store := &fakeStore{settings: allocatorSettings()}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1", "B2", "B3"},
		Clients:  []string{"C1", "C2", "C3", "C4"},
		Days:     []domain.Day{domain.Monday, domain.Tuesday},
		Interval: 30,
	})
	require.NoError(t, err)

	appts := store.appointments
	for i := range appts {
		for j := i + 1; j < len(appts); j++ {
			assert.False(t, appts[i].ConflictsWith(appts[j]),
				"%s conflicts with %s", appts[i], appts[j])
		}
	}
}

func TestExecuteLunchExclusion(t *testing.T) {
	store := &fakeStore{settings: allocatorSettings()}
	uc := newTestUseCase(store)

	// Enough pairings to fill the morning and spill past lunch.
	_, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9", "C10"},
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	require.NoError(t, err)

	grid := domain.NewGrid(store.settings)
	for _, a := range store.appointments {
		assert.False(t, grid.InLunch(a.Slot), "appointment %s sits in lunch", a)
	}
	// 08:00-12:00 holds eight pairings; the ninth jumps to 14:00.
	assert.Contains(t, slotsOf(store.appointments), types.TimeString("14:00"))
}

func TestExecuteBalanceDays(t *testing.T) {
	store := &fakeStore{settings: allocatorSettings()}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:      []string{"B1"},
		Clients:     []string{"C1", "C2", "C3"},
		Days:        []domain.Day{domain.Monday, domain.Tuesday},
		Interval:    30,
		BalanceDays: true,
	})
	require.NoError(t, err)

	// Clients are dealt round-robin: C1 and C3 on Monday, C2 on Tuesday.
	assert.Equal(t, DaySummary{Added: 2}, resp.Summaries[domain.Monday])
	assert.Equal(t, DaySummary{Added: 1}, resp.Summaries[domain.Tuesday])
	require.Len(t, resp.Placed, 3)

	byClient := make(map[string]domain.Day)
	for _, a := range resp.Placed {
		byClient[a.Client] = a.Day
	}
	assert.Equal(t, domain.Monday, byClient["C1"])
	assert.Equal(t, domain.Tuesday, byClient["C2"])
	assert.Equal(t, domain.Monday, byClient["C3"])
}

func TestExecuteWithoutBalancePlacesEveryDay(t *testing.T) {
	store := &fakeStore{settings: allocatorSettings()}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1"},
		Days:     []domain.Day{domain.Monday, domain.Tuesday},
		Interval: 30,
	})
	require.NoError(t, err)

	require.Len(t, resp.Placed, 2)
	assert.Equal(t, DaySummary{Added: 1}, resp.Summaries[domain.Monday])
	assert.Equal(t, DaySummary{Added: 1}, resp.Summaries[domain.Tuesday])
}

func TestExecuteMaxConsecutive(t *testing.T) {
	store := &fakeStore{settings: allocatorSettings()}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:         []string{"B1"},
		Clients:        []string{"C1", "C2", "C3"},
		Days:           []domain.Day{domain.Monday},
		Interval:       30,
		MaxConsecutive: 2,
	})
	require.NoError(t, err)

	// Two back-to-back appointments, then a forced break before the third.
	require.Len(t, resp.Placed, 3)
	assert.Equal(t, []types.TimeString{"08:00", "08:30", "09:30"}, slotsOf(resp.Placed))
}

func TestExecuteHourlyInterval(t *testing.T) {
	store := &fakeStore{settings: allocatorSettings()}
	uc := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1", "C2"},
		Days:     []domain.Day{domain.Monday},
		Interval: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"08:00", "09:00"}, slotsOf(resp.Placed))
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeStore{settings: allocatorSettings()})

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "unsupported interval",
			req:  &Request{Buyers: []string{"B1"}, Clients: []string{"C1"}, Days: []domain.Day{domain.Monday}, Interval: 45},
		},
		{
			name: "negative max consecutive",
			req:  &Request{Buyers: []string{"B1"}, Clients: []string{"C1"}, Days: []domain.Day{domain.Monday}, Interval: 30, MaxConsecutive: -1},
		},
		{
			name: "unknown day",
			req:  &Request{Buyers: []string{"B1"}, Clients: []string{"C1"}, Days: []domain.Day{"Sunday"}, Interval: 30},
		},
		{
			name: "empty participant name",
			req:  &Request{Buyers: []string{""}, Clients: []string{"C1"}, Days: []domain.Day{domain.Monday}, Interval: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteCommitFailure(t *testing.T) {
	store := &fakeStore{settings: allocatorSettings(), replaceErr: errors.New("disk full")}
	uc := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), &Request{
		Buyers:   []string{"B1"},
		Clients:  []string{"C1"},
		Days:     []domain.Day{domain.Monday},
		Interval: 30,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
