package domain

import (
	"errors"
	"fmt"

	"github.com/ubagofish/scheduler-service/pkg/types"
)

var (
	// ErrInvalidTime is returned for time values off the half-hour grid
	ErrInvalidTime = errors.New("time is not on the half-hour grid")

	// ErrInvalidWindow is returned for an empty or inverted time range
	ErrInvalidWindow = errors.New("invalid time window")
)

// TimeWindow narrows the candidate slot range for one buyer on one day.
type TimeWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Settings is the schedule-wide configuration: the operating window, the
// lunch blackout, the days under consideration and the per-buyer per-day
// time windows.
type Settings struct {
	StartHour    types.TimeString              `json:"start_hour"`
	EndHour      types.TimeString              `json:"end_hour"`
	LunchStart   types.TimeString              `json:"lunch_start"`
	LunchEnd     types.TimeString              `json:"lunch_end"`
	SelectedDays []Day                         `json:"selected_days"`
	TimeWindows  map[string]map[Day]TimeWindow `json:"time_windows"`
}

// DefaultSettings returns the configuration used when no state file exists.
func DefaultSettings() Settings {
	return Settings{
		StartHour:    DefaultStartHour,
		EndHour:      DefaultEndHour,
		LunchStart:   DefaultLunchStart,
		LunchEnd:     DefaultLunchEnd,
		SelectedDays: []Day{Monday, Tuesday},
		TimeWindows:  map[string]map[Day]TimeWindow{},
	}
}

// Validate checks that every boundary sits on the half-hour grid, the
// operating window is non-empty and the lunch window is not inverted.
func (s Settings) Validate() error {
	for _, t := range []types.TimeString{s.StartHour, s.EndHour, s.LunchStart, s.LunchEnd} {
		if err := validateGridTime(t); err != nil {
			return err
		}
	}
	if !s.StartHour.IsBefore(s.EndHour) {
		return fmt.Errorf("%w: operating window %s-%s", ErrInvalidWindow, s.StartHour, s.EndHour)
	}
	if s.LunchEnd.IsBefore(s.LunchStart) {
		return fmt.Errorf("%w: lunch window %s-%s", ErrInvalidWindow, s.LunchStart, s.LunchEnd)
	}
	for buyer, days := range s.TimeWindows {
		for day, w := range days {
			if err := validateGridTime(w.Start); err != nil {
				return fmt.Errorf("time window for %s on %s: %w", buyer, day, err)
			}
			if err := validateGridTime(w.End); err != nil {
				return fmt.Errorf("time window for %s on %s: %w", buyer, day, err)
			}
			if !w.Start.IsBefore(w.End) {
				return fmt.Errorf("%w: %s on %s: %s-%s", ErrInvalidWindow, buyer, day, w.Start, w.End)
			}
		}
	}
	return nil
}

// WindowFor returns the buyer's time window for the day, if one is set.
func (s Settings) WindowFor(buyer string, day Day) (TimeWindow, bool) {
	days, ok := s.TimeWindows[buyer]
	if !ok {
		return TimeWindow{}, false
	}
	w, ok := days[day]
	return w, ok
}

func validateGridTime(t types.TimeString) error {
	if _, err := types.NewTimeStringFromString(string(t)); err != nil {
		return err
	}
	if t.Minutes()%SlotMinutes != 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTime, t)
	}
	return nil
}
