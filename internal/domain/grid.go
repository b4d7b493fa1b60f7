package domain

import (
	"fmt"

	"github.com/ubagofish/scheduler-service/pkg/types"
)

// Grid is the calendar grid: the discrete half-hour time axis bounded by
// the operating window, with the lunch blackout carved out. All methods
// are pure functions of the settings.
type Grid struct {
	settings Settings
}

// NewGrid builds a grid over the given settings.
func NewGrid(settings Settings) Grid {
	return Grid{settings: settings}
}

// Slots enumerates every half-hour slot in [StartHour, EndHour),
// lunch included. Views and the exporter render all of them; candidate
// enumeration for the allocator goes through SlotsFor.
func (g Grid) Slots() []types.TimeString {
	slots := make([]types.TimeString, 0)
	for m := g.settings.StartHour.Minutes(); m < g.settings.EndHour.Minutes(); m += SlotMinutes {
		slots = append(slots, minutesToSlot(m))
	}
	return slots
}

// InLunch reports whether the slot falls inside the lunch blackout,
// start inclusive, end exclusive.
func (g Grid) InLunch(t types.TimeString) bool {
	m := t.Minutes()
	return g.settings.LunchStart.Minutes() <= m && m < g.settings.LunchEnd.Minutes()
}

// Contains reports whether the slot lies on the grid inside the
// operating window.
func (g Grid) Contains(t types.TimeString) bool {
	m := t.Minutes()
	if m%SlotMinutes != 0 {
		return false
	}
	return g.settings.StartHour.Minutes() <= m && m < g.settings.EndHour.Minutes()
}

// SlotsFor enumerates the candidate slots for one buyer on one day, in
// ascending time order: the intersection of the operating window and the
// buyer's time window for that day (if any), excluding lunch, restricted
// to multiples of the interval on the global half-hour grid.
// Interval must be 30 or 60 minutes. A non-overlapping time window
// yields an empty result.
func (g Grid) SlotsFor(buyer string, day Day, interval int) ([]types.TimeString, error) {
	stride, err := intervalStride(interval)
	if err != nil {
		return nil, err
	}

	start := g.settings.StartHour.Minutes()
	end := g.settings.EndHour.Minutes()
	if w, ok := g.settings.WindowFor(buyer, day); ok {
		if wm := w.Start.Minutes(); wm > start {
			start = wm
		}
		if wm := w.End.Minutes(); wm < end {
			end = wm
		}
	}

	slots := make([]types.TimeString, 0)
	for m := start; m < end; m += SlotMinutes {
		if (m/SlotMinutes)%stride != 0 {
			continue
		}
		slot := minutesToSlot(m)
		if g.InLunch(slot) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func intervalStride(interval int) (int, error) {
	switch interval {
	case MinIntervalMinutes, MaxIntervalMinutes:
		return interval / SlotMinutes, nil
	default:
		return 0, fmt.Errorf("unsupported interval %d, expected 30 or 60", interval)
	}
}

func minutesToSlot(m int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}
