package allocate_slots

import (
	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// Request describes one allocator run: which buyers, clients and days to
// reflow, at which appointment duration.
type Request struct {
	Buyers   []string     // buyers to reflow; their unlocked appointments in scope are re-derived
	Clients  []string     // clients to pair with each buyer
	Days     []domain.Day // days under consideration
	Interval int          // appointment duration in minutes, 30 or 60

	// BalanceDays deals the clients round-robin across the selected days,
	// so each (buyer, client) pairing targets exactly one day. When false
	// every selected day gets every pairing.
	BalanceDays bool

	// MaxConsecutive caps a buyer's run of back-to-back appointments;
	// a candidate slot extending the run past the cap is rejected.
	// Zero disables the cadence.
	MaxConsecutive int
}

// DaySummary counts the allocation outcomes for one day.
type DaySummary struct {
	Kept    int
	Added   int
	Moved   int
	Skipped int
}

func (s *DaySummary) add(other DaySummary) {
	s.Kept += other.Kept
	s.Added += other.Added
	s.Moved += other.Moved
	s.Skipped += other.Skipped
}

// Response reports the outcome of one allocator run.
type Response struct {
	Summaries map[domain.Day]DaySummary // per-day outcome counts
	Total     DaySummary
	Placed    []domain.Appointment // appointments written by this run (kept, added and moved)
}

// pairing is one requested (client, buyer, day) triple. PrevSlot carries
// the slot of the unlocked appointment being reconsidered, if any; it is
// used only for kept-vs-moved bookkeeping and the keep check, never to
// bypass conflict checks.
type pairing struct {
	client   string
	buyer    string
	day      domain.Day
	prevSlot *types.TimeString
}
