package domain

import (
	"fmt"

	"github.com/ubagofish/scheduler-service/pkg/types"
)

// Day is one of the six fair days, Monday through Saturday.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
)

// Days lists the fair days in calendar order.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseDay validates a day label.
func ParseDay(s string) (Day, error) {
	for _, d := range Days {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day %q", s)
}

// Appointment is a meeting between one client and one buyer at a fixed
// day and slot. Locked appointments were pinned manually and must never
// be moved or removed by the allocator.
type Appointment struct {
	Client string           `json:"client"`
	Buyer  string           `json:"buyer"`
	Day    Day              `json:"day"`
	Slot   types.TimeString `json:"slot"`
	Locked bool             `json:"locked"`
}

// SamePairing reports whether both appointments join the same client and
// buyer on the same day, regardless of slot.
func (a Appointment) SamePairing(other Appointment) bool {
	return a.Client == other.Client && a.Buyer == other.Buyer && a.Day == other.Day
}

// ConflictsWith reports whether the two appointments double-book a
// participant: same day and slot, sharing either the client or the buyer.
func (a Appointment) ConflictsWith(other Appointment) bool {
	if a.Day != other.Day || a.Slot != other.Slot {
		return false
	}
	return a.Client == other.Client || a.Buyer == other.Buyer
}

func (a Appointment) String() string {
	return fmt.Sprintf("%s with %s (%s at %s)", a.Client, a.Buyer, a.Day, a.Slot)
}
