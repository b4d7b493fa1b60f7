package get_settings

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
)

// TimeWindowResponse one per-buyer per-day window
type TimeWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SettingsResponse HTTP response model
type SettingsResponse struct {
	StartHour    string                                   `json:"startHour"`
	EndHour      string                                   `json:"endHour"`
	LunchStart   string                                   `json:"lunchStart"`
	LunchEnd     string                                   `json:"lunchEnd"`
	SelectedDays []string                                 `json:"selectedDays"`
	TimeWindows  map[string]map[string]TimeWindowResponse `json:"timeWindows"`
}

// FromDomainSettings converts domain settings to the HTTP model.
func FromDomainSettings(s domain.Settings) *SettingsResponse {
	days := make([]string, 0, len(s.SelectedDays))
	for _, d := range s.SelectedDays {
		days = append(days, string(d))
	}

	windows := make(map[string]map[string]TimeWindowResponse, len(s.TimeWindows))
	for buyer, perDay := range s.TimeWindows {
		converted := make(map[string]TimeWindowResponse, len(perDay))
		for day, w := range perDay {
			converted[string(day)] = TimeWindowResponse{
				Start: w.Start.String(),
				End:   w.End.String(),
			}
		}
		windows[buyer] = converted
	}

	return &SettingsResponse{
		StartHour:    s.StartHour.String(),
		EndHour:      s.EndHour.String(),
		LunchStart:   s.LunchStart.String(),
		LunchEnd:     s.LunchEnd.String(),
		SelectedDays: days,
		TimeWindows:  windows,
	}
}
