package create_appointment

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// Request pins one manual appointment. Manual appointments are locked:
// the allocator never moves or removes them.
type Request struct {
	Client string
	Buyer  string
	Day    domain.Day
	Slot   types.TimeString
}

// Response is the stored appointment.
type Response struct {
	Appointment domain.Appointment
}
