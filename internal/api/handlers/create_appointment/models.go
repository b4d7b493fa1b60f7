package create_appointment

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
	createAppointment "github.com/ubagofish/scheduler-service/internal/usecase/create_appointment"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Client string `json:"client"`
	Buyer  string `json:"buyer"`
	Day    string `json:"day"`  // "Monday"
	Slot   string `json:"slot"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Client string `json:"client"`
	Buyer  string `json:"buyer"`
	Day    string `json:"day"`
	Slot   string `json:"slot"`
	Locked bool   `json:"locked"`
}

// ToUseCaseRequest converts the HTTP request, parsing day and slot.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	day, err := domain.ParseDay(r.Day)
	if err != nil {
		return nil, err
	}
	slot, err := types.NewTimeStringFromString(r.Slot)
	if err != nil {
		return nil, err
	}
	return &createAppointment.Request{
		Client: r.Client,
		Buyer:  r.Buyer,
		Day:    day,
		Slot:   slot,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		Client: resp.Appointment.Client,
		Buyer:  resp.Appointment.Buyer,
		Day:    string(resp.Appointment.Day),
		Slot:   resp.Appointment.Slot.String(),
		Locked: resp.Appointment.Locked,
	}
}
