package update_settings

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// TimeWindowRequest one per-buyer per-day window
type TimeWindowRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	StartHour    string                                  `json:"startHour"`
	EndHour      string                                  `json:"endHour"`
	LunchStart   string                                  `json:"lunchStart"`
	LunchEnd     string                                  `json:"lunchEnd"`
	SelectedDays []string                                `json:"selectedDays"`
	TimeWindows  map[string]map[string]TimeWindowRequest `json:"timeWindows"`
}

// UpdateSettingsResponse HTTP response model. Pruned counts the
// appointments removed because they fell inside the new lunch window.
type UpdateSettingsResponse struct {
	StartHour    string   `json:"startHour"`
	EndHour      string   `json:"endHour"`
	LunchStart   string   `json:"lunchStart"`
	LunchEnd     string   `json:"lunchEnd"`
	SelectedDays []string `json:"selectedDays"`
	Pruned       int      `json:"pruned"`
}

// ToDomainSettings converts the HTTP request, parsing every time and day
// label.
func (r *UpdateSettingsRequest) ToDomainSettings() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	var err error
	if settings.StartHour, err = types.NewTimeStringFromString(r.StartHour); err != nil {
		return domain.Settings{}, err
	}
	if settings.EndHour, err = types.NewTimeStringFromString(r.EndHour); err != nil {
		return domain.Settings{}, err
	}
	if settings.LunchStart, err = types.NewTimeStringFromString(r.LunchStart); err != nil {
		return domain.Settings{}, err
	}
	if settings.LunchEnd, err = types.NewTimeStringFromString(r.LunchEnd); err != nil {
		return domain.Settings{}, err
	}

	settings.SelectedDays = make([]domain.Day, 0, len(r.SelectedDays))
	for _, label := range r.SelectedDays {
		day, err := domain.ParseDay(label)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.SelectedDays = append(settings.SelectedDays, day)
	}

	settings.TimeWindows = make(map[string]map[domain.Day]domain.TimeWindow, len(r.TimeWindows))
	for buyer, perDay := range r.TimeWindows {
		converted := make(map[domain.Day]domain.TimeWindow, len(perDay))
		for label, w := range perDay {
			day, err := domain.ParseDay(label)
			if err != nil {
				return domain.Settings{}, err
			}
			start, err := types.NewTimeStringFromString(w.Start)
			if err != nil {
				return domain.Settings{}, err
			}
			end, err := types.NewTimeStringFromString(w.End)
			if err != nil {
				return domain.Settings{}, err
			}
			converted[day] = domain.TimeWindow{Start: start, End: end}
		}
		settings.TimeWindows[buyer] = converted
	}

	return settings, nil
}

// FromDomainSettings converts the stored settings to the HTTP model.
func FromDomainSettings(s domain.Settings, pruned int) *UpdateSettingsResponse {
	days := make([]string, 0, len(s.SelectedDays))
	for _, d := range s.SelectedDays {
		days = append(days, string(d))
	}
	return &UpdateSettingsResponse{
		StartHour:    s.StartHour.String(),
		EndHour:      s.EndHour.String(),
		LunchStart:   s.LunchStart.String(),
		LunchEnd:     s.LunchEnd.String(),
		SelectedDays: days,
		Pruned:       pruned,
	}
}
