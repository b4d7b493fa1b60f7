package models

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// AppointmentView is one occupant of a slot in the grid view.
type AppointmentView struct {
	Client string `json:"client"`
	Buyer  string `json:"buyer"`
	Locked bool   `json:"locked"`
}

// SlotView is one cell column of the weekly grid: a time slot with its
// lunch flag and occupants.
type SlotView struct {
	Time         types.TimeString  `json:"time"`
	Lunch        bool              `json:"lunch"`
	Appointments []AppointmentView `json:"appointments"`
}

// DayView is one day's row of the weekly grid.
type DayView struct {
	Day   domain.Day `json:"day"`
	Slots []SlotView `json:"slots"`
}

// ScheduleView is the full weekly grid plus the participant lists: the
// stable enumeration the calendar view and the exporter consume.
type ScheduleView struct {
	Buyers  []string  `json:"buyers"`
	Clients []string  `json:"clients"`
	Days    []DayView `json:"days"`
}

// DeleteScope selects what a bulk delete removes.
type DeleteScope string

const (
	DeleteScopeAll    DeleteScope = "all"
	DeleteScopeBuyer  DeleteScope = "buyer"
	DeleteScopeClient DeleteScope = "client"
	DeleteScopeDay    DeleteScope = "day"
)

// DeleteRequest is one bulk delete: everything, one participant's
// appointments, or one day's.
type DeleteRequest struct {
	Scope DeleteScope
	Name  string // participant name for buyer/client scope
	Day   string // day label for day scope
}

// DeleteResponse reports how many appointments were removed.
type DeleteResponse struct {
	Removed int `json:"removed"`
}

// ParticipantsResponse is the stored participant lists after an update.
type ParticipantsResponse struct {
	Buyers  []string `json:"buyers"`
	Clients []string `json:"clients"`
}

// BuildScheduleView assembles the weekly grid from the store state.
func BuildScheduleView(buyers, clients []string, appointments []domain.Appointment, settings domain.Settings) *ScheduleView {
	grid := domain.NewGrid(settings)
	slots := grid.Slots()

	byDaySlot := make(map[domain.Day]map[types.TimeString][]AppointmentView)
	for _, a := range appointments {
		if byDaySlot[a.Day] == nil {
			byDaySlot[a.Day] = make(map[types.TimeString][]AppointmentView)
		}
		byDaySlot[a.Day][a.Slot] = append(byDaySlot[a.Day][a.Slot], AppointmentView{
			Client: a.Client,
			Buyer:  a.Buyer,
			Locked: a.Locked,
		})
	}

	days := make([]DayView, 0, len(domain.Days))
	for _, day := range domain.Days {
		dayView := DayView{Day: day, Slots: make([]SlotView, 0, len(slots))}
		for _, slot := range slots {
			dayView.Slots = append(dayView.Slots, SlotView{
				Time:         slot,
				Lunch:        grid.InLunch(slot),
				Appointments: byDaySlot[day][slot],
			})
		}
		days = append(days, dayView)
	}

	return &ScheduleView{
		Buyers:  buyers,
		Clients: clients,
		Days:    days,
	}
}
