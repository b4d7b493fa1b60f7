package allocate_slots

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
	allocateSlots "github.com/ubagofish/scheduler-service/internal/usecase/allocate_slots"
)

// AllocateRequest HTTP request model
type AllocateRequest struct {
	Buyers         []string `json:"buyers"`
	Clients        []string `json:"clients"`
	Days           []string `json:"days"`
	Interval       int      `json:"interval"`       // minutes, 30 or 60
	BalanceDays    bool     `json:"balanceDays"`    // deal clients round-robin across days
	MaxConsecutive int      `json:"maxConsecutive"` // 0 disables the rest-gap cadence
}

// DaySummaryResponse outcome counts for one day
type DaySummaryResponse struct {
	Kept    int `json:"kept"`
	Added   int `json:"added"`
	Moved   int `json:"moved"`
	Skipped int `json:"skipped"`
}

// AppointmentResponse one placed appointment
type AppointmentResponse struct {
	Client string `json:"client"`
	Buyer  string `json:"buyer"`
	Day    string `json:"day"`
	Slot   string `json:"slot"`
	Locked bool   `json:"locked"`
}

// AllocateResponse HTTP response model
type AllocateResponse struct {
	Summaries map[string]DaySummaryResponse `json:"summaries"`
	Total     DaySummaryResponse            `json:"total"`
	Placed    []AppointmentResponse         `json:"placed"`
}

// ToUseCaseRequest converts the HTTP request, parsing the day labels.
func (r *AllocateRequest) ToUseCaseRequest() (*allocateSlots.Request, error) {
	days := make([]domain.Day, 0, len(r.Days))
	for _, label := range r.Days {
		day, err := domain.ParseDay(label)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return &allocateSlots.Request{
		Buyers:         r.Buyers,
		Clients:        r.Clients,
		Days:           days,
		Interval:       r.Interval,
		BalanceDays:    r.BalanceDays,
		MaxConsecutive: r.MaxConsecutive,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *allocateSlots.Response) *AllocateResponse {
	out := &AllocateResponse{
		Summaries: make(map[string]DaySummaryResponse, len(resp.Summaries)),
		Total:     toDaySummary(resp.Total),
		Placed:    make([]AppointmentResponse, 0, len(resp.Placed)),
	}
	for day, summary := range resp.Summaries {
		out.Summaries[string(day)] = toDaySummary(summary)
	}
	for _, a := range resp.Placed {
		out.Placed = append(out.Placed, AppointmentResponse{
			Client: a.Client,
			Buyer:  a.Buyer,
			Day:    string(a.Day),
			Slot:   a.Slot.String(),
			Locked: a.Locked,
		})
	}
	return out
}

func toDaySummary(s allocateSlots.DaySummary) DaySummaryResponse {
	return DaySummaryResponse{
		Kept:    s.Kept,
		Added:   s.Added,
		Moved:   s.Moved,
		Skipped: s.Skipped,
	}
}
