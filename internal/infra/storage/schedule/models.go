package schedule

import (
	"encoding/json"
	"fmt"

	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// persistedState is the on-disk representation of the whole schedule:
// one flat JSON document, overwritten atomically after each mutation.
type persistedState struct {
	Clients      []string                                    `json:"clients"`
	Buyers       []string                                    `json:"buyers"`
	Appointments []persistedAppointment                      `json:"appointments"`
	StartHour    types.TimeString                            `json:"start_hour"`
	EndHour      types.TimeString                            `json:"end_hour"`
	LunchStart   types.TimeString                            `json:"lunch_start"`
	LunchEnd     types.TimeString                            `json:"lunch_end"`
	SelectedDays []domain.Day                                `json:"selected_days"`
	TimeWindows  map[string]map[domain.Day]domain.TimeWindow `json:"time_windows"`
}

// persistedAppointment wraps domain.Appointment with a legacy decode
// path: older state files stored appointments as bare 4-element arrays
// [client, buyer, day, slot] with no lock flag. Those decode as locked,
// since the allocator must not move records it cannot prove it created.
type persistedAppointment struct {
	domain.Appointment
}

func (p persistedAppointment) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Appointment)
}

func (p *persistedAppointment) UnmarshalJSON(data []byte) error {
	var record struct {
		Client string           `json:"client"`
		Buyer  string           `json:"buyer"`
		Day    string           `json:"day"`
		Slot   types.TimeString `json:"slot"`
		Locked bool             `json:"locked"`
	}
	if err := json.Unmarshal(data, &record); err == nil {
		day, dayErr := domain.ParseDay(record.Day)
		if dayErr != nil {
			return dayErr
		}
		p.Appointment = domain.Appointment{
			Client: record.Client,
			Buyer:  record.Buyer,
			Day:    day,
			Slot:   record.Slot,
			Locked: record.Locked,
		}
		return nil
	}

	// Legacy tuple form
	var tuple []string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("appointment is neither a record nor a tuple: %w", err)
	}
	if len(tuple) != 4 {
		return fmt.Errorf("legacy appointment tuple has %d elements, expected 4", len(tuple))
	}
	day, err := domain.ParseDay(tuple[2])
	if err != nil {
		return err
	}
	slot, err := types.NewTimeStringFromString(tuple[3])
	if err != nil {
		return err
	}
	p.Appointment = domain.Appointment{
		Client: tuple[0],
		Buyer:  tuple[1],
		Day:    day,
		Slot:   slot,
		Locked: true,
	}
	return nil
}

func toPersistedState(buyers, clients []string, appointments []domain.Appointment, settings domain.Settings) persistedState {
	persisted := make([]persistedAppointment, len(appointments))
	for i, a := range appointments {
		persisted[i] = persistedAppointment{Appointment: a}
	}
	return persistedState{
		Clients:      clients,
		Buyers:       buyers,
		Appointments: persisted,
		StartHour:    settings.StartHour,
		EndHour:      settings.EndHour,
		LunchStart:   settings.LunchStart,
		LunchEnd:     settings.LunchEnd,
		SelectedDays: settings.SelectedDays,
		TimeWindows:  settings.TimeWindows,
	}
}

func (s persistedState) settings() domain.Settings {
	settings := domain.DefaultSettings()
	if s.StartHour != "" {
		settings.StartHour = s.StartHour
	}
	if s.EndHour != "" {
		settings.EndHour = s.EndHour
	}
	if s.LunchStart != "" {
		settings.LunchStart = s.LunchStart
	}
	if s.LunchEnd != "" {
		settings.LunchEnd = s.LunchEnd
	}
	if s.SelectedDays != nil {
		settings.SelectedDays = s.SelectedDays
	}
	if s.TimeWindows != nil {
		settings.TimeWindows = s.TimeWindows
	}
	return settings
}

func (s persistedState) appointments() []domain.Appointment {
	appointments := make([]domain.Appointment, len(s.Appointments))
	for i, p := range s.Appointments {
		appointments[i] = p.Appointment
	}
	return appointments
}
