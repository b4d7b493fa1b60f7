package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/internal/service/schedule/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeStore struct {
	buyers       []string
	clients      []string
	appointments []domain.Appointment
	settings     domain.Settings

	deletedBuyer  string
	deletedClient string
	deletedDay    domain.Day
	deletedAll    bool
	removed       int
}

func (f *fakeStore) Buyers() []string                   { return f.buyers }
func (f *fakeStore) Clients() []string                  { return f.clients }
func (f *fakeStore) Appointments() []domain.Appointment { return f.appointments }
func (f *fakeStore) Settings() domain.Settings          { return f.settings }

func (f *fakeStore) SetParticipants(buyers, clients []string) error {
	f.buyers = buyers
	f.clients = clients
	return nil
}

func (f *fakeStore) DeleteAll() (int, error) {
	f.deletedAll = true
	return f.removed, nil
}

func (f *fakeStore) DeleteByBuyer(buyer string) (int, error) {
	f.deletedBuyer = buyer
	return f.removed, nil
}

func (f *fakeStore) DeleteByClient(client string) (int, error) {
	f.deletedClient = client
	return f.removed, nil
}

func (f *fakeStore) DeleteByDay(day domain.Day) (int, error) {
	f.deletedDay = day
	return f.removed, nil
}

func TestGetSchedule(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.StartHour = "08:00"
	settings.EndHour = "10:00"
	settings.LunchStart = "09:00"
	settings.LunchEnd = "09:30"

	store := &fakeStore{
		buyers:  []string{"Acme"},
		clients: []string{"Nordsee"},
		appointments: []domain.Appointment{
			{Client: "Nordsee", Buyer: "Acme", Day: domain.Monday, Slot: "08:00", Locked: true},
		},
		settings: settings,
	}
	svc := NewService(store, noopLogger{})

	view, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Acme"}, view.Buyers)
	assert.Equal(t, []string{"Nordsee"}, view.Clients)
	require.Len(t, view.Days, len(domain.Days))

	monday := view.Days[0]
	assert.Equal(t, domain.Monday, monday.Day)
	require.Len(t, monday.Slots, 4)

	assert.Equal(t, []models.AppointmentView{
		{Client: "Nordsee", Buyer: "Acme", Locked: true},
	}, monday.Slots[0].Appointments)
	assert.False(t, monday.Slots[0].Lunch)
	assert.True(t, monday.Slots[2].Lunch)
	assert.Empty(t, monday.Slots[2].Appointments)

	// Tuesday carries the same slot axis with no occupants.
	assert.Empty(t, view.Days[1].Slots[0].Appointments)
}

func TestUpdateParticipants(t *testing.T) {
	store := &fakeStore{settings: domain.DefaultSettings()}
	svc := NewService(store, noopLogger{})

	resp, err := svc.UpdateParticipants(context.Background(),
		[]string{"  Acme ", "Globex", "Acme", ""},
		[]string{"Nordsee", " Nordsee", "Pescanova"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Acme", "Globex"}, resp.Buyers)
	assert.Equal(t, []string{"Nordsee", "Pescanova"}, resp.Clients)
	assert.Equal(t, resp.Buyers, store.buyers)
	assert.Equal(t, resp.Clients, store.clients)
}

func TestDeleteAppointments(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		store := &fakeStore{removed: 5}
		svc := NewService(store, noopLogger{})

		resp, err := svc.DeleteAppointments(context.Background(), &models.DeleteRequest{Scope: models.DeleteScopeAll})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Removed)
		assert.True(t, store.deletedAll)
	})

	t.Run("by buyer", func(t *testing.T) {
		store := &fakeStore{removed: 2}
		svc := NewService(store, noopLogger{})

		resp, err := svc.DeleteAppointments(context.Background(), &models.DeleteRequest{
			Scope: models.DeleteScopeBuyer,
			Name:  "Acme",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Removed)
		assert.Equal(t, "Acme", store.deletedBuyer)
	})

	t.Run("by client", func(t *testing.T) {
		store := &fakeStore{removed: 1}
		svc := NewService(store, noopLogger{})

		resp, err := svc.DeleteAppointments(context.Background(), &models.DeleteRequest{
			Scope: models.DeleteScopeClient,
			Name:  "Nordsee",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Removed)
		assert.Equal(t, "Nordsee", store.deletedClient)
	})

	t.Run("by day", func(t *testing.T) {
		store := &fakeStore{removed: 3}
		svc := NewService(store, noopLogger{})

		resp, err := svc.DeleteAppointments(context.Background(), &models.DeleteRequest{
			Scope: models.DeleteScopeDay,
			Day:   "Tuesday",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Removed)
		assert.Equal(t, domain.Tuesday, store.deletedDay)
	})

	t.Run("buyer scope without name", func(t *testing.T) {
		svc := NewService(&fakeStore{}, noopLogger{})

		_, err := svc.DeleteAppointments(context.Background(), &models.DeleteRequest{Scope: models.DeleteScopeBuyer})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("day scope with bad day", func(t *testing.T) {
		svc := NewService(&fakeStore{}, noopLogger{})

		_, err := svc.DeleteAppointments(context.Background(), &models.DeleteRequest{
			Scope: models.DeleteScopeDay,
			Day:   "Someday",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown scope", func(t *testing.T) {
		svc := NewService(&fakeStore{}, noopLogger{})

		_, err := svc.DeleteAppointments(context.Background(), &models.DeleteRequest{Scope: "everything"})
		assert.ErrorIs(t, err, ErrUnknownScope)
	})
}
