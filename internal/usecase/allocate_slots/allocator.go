package allocate_slots

import (
	"fmt"

	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/ptr"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// occupant keys the per-participant occupancy maps.
type occupant struct {
	day  domain.Day
	slot types.TimeString
	name string
}

// groupKey identifies one (buyer, day) placement group.
type groupKey struct {
	buyer string
	day   domain.Day
}

// allocation is the outcome of one placement pass.
type allocation struct {
	placed    []domain.Appointment
	summaries map[domain.Day]DaySummary
}

// buildPairings expands the requested buyers, clients and days into the
// ordered list of (client, buyer, day) triples to place. With balanceDays
// the clients are dealt round-robin across the days; otherwise every day
// gets every combination. prevSlots carries the previous slots of the
// unlocked appointments under reflow.
func buildPairings(req *Request, prevSlots map[pairingID]types.TimeString) []pairing {
	pairings := make([]pairing, 0, len(req.Buyers)*len(req.Clients))

	for _, buyer := range req.Buyers {
		if req.BalanceDays {
			for i, client := range req.Clients {
				day := req.Days[i%len(req.Days)]
				pairings = append(pairings, newPairing(client, buyer, day, prevSlots))
			}
			continue
		}
		for _, client := range req.Clients {
			for _, day := range req.Days {
				pairings = append(pairings, newPairing(client, buyer, day, prevSlots))
			}
		}
	}
	return pairings
}

type pairingID struct {
	client string
	buyer  string
	day    domain.Day
}

func newPairing(client, buyer string, day domain.Day, prevSlots map[pairingID]types.TimeString) pairing {
	p := pairing{client: client, buyer: buyer, day: day}
	if slot, ok := prevSlots[pairingID{client: client, buyer: buyer, day: day}]; ok {
		p.prevSlot = ptr.Ptr(slot)
	}
	return p
}

// allocate runs the greedy first-fit placement over the requested
// pairings. surviving holds the appointments that remain untouched by
// this run (every locked one plus the unlocked ones outside the targeted
// sets); they pre-occupy their participants' slots for conflict checks,
// and the locked ones additionally seed the per-day taken set.
//
// Deterministic tie-break: the earliest candidate slot wins. pickSlot is
// the single place to change if randomized spreading is ever wanted.
func allocate(grid domain.Grid, req *Request, surviving []domain.Appointment, prevSlots map[pairingID]types.TimeString) (allocation, error) {
	out := allocation{summaries: make(map[domain.Day]DaySummary)}

	buyerBusy := make(map[occupant]bool)
	clientBusy := make(map[occupant]bool)
	taken := make(map[domain.Day]map[types.TimeString]bool)
	for _, day := range req.Days {
		taken[day] = make(map[types.TimeString]bool)
	}

	for _, a := range surviving {
		buyerBusy[occupant{day: a.Day, slot: a.Slot, name: a.Buyer}] = true
		clientBusy[occupant{day: a.Day, slot: a.Slot, name: a.Client}] = true
		if a.Locked && taken[a.Day] != nil {
			taken[a.Day][a.Slot] = true
		}
	}

	pairings := buildPairings(req, prevSlots)

	// Group by (buyer, day), preserving first-appearance order.
	groupOrder := make([]groupKey, 0)
	groups := make(map[groupKey][]pairing)
	for _, p := range pairings {
		key := groupKey{buyer: p.buyer, day: p.day}
		if _, ok := groups[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], p)
	}

	for _, key := range groupOrder {
		candidates, err := grid.SlotsFor(key.buyer, key.day, req.Interval)
		if err != nil {
			return allocation{}, err
		}

		summary := out.summaries[key.day]
		for _, p := range groups[key] {
			placed, outcome := placePairing(p, candidates, buyerBusy, clientBusy, taken[p.day], req)
			switch outcome {
			case outcomeKept:
				summary.Kept++
			case outcomeAdded:
				summary.Added++
			case outcomeMoved:
				summary.Moved++
			case outcomeSkipped:
				summary.Skipped++
				continue
			}
			out.placed = append(out.placed, placed)
		}
		out.summaries[key.day] = summary
	}

	return out, nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeKept
	outcomeAdded
	outcomeMoved
)

// placePairing assigns one pairing. The previous slot is kept when it is
// still a candidate and still free for both participants; otherwise the
// first admissible candidate wins; with none the pairing is skipped.
func placePairing(
	p pairing,
	candidates []types.TimeString,
	buyerBusy, clientBusy map[occupant]bool,
	taken map[types.TimeString]bool,
	req *Request,
) (domain.Appointment, outcome) {
	free := func(slot types.TimeString) bool {
		return !buyerBusy[occupant{day: p.day, slot: slot, name: p.buyer}] &&
			!clientBusy[occupant{day: p.day, slot: slot, name: p.client}]
	}
	occupy := func(slot types.TimeString) domain.Appointment {
		buyerBusy[occupant{day: p.day, slot: slot, name: p.buyer}] = true
		clientBusy[occupant{day: p.day, slot: slot, name: p.client}] = true
		taken[slot] = true
		return domain.Appointment{Client: p.client, Buyer: p.buyer, Day: p.day, Slot: slot}
	}

	if p.prevSlot != nil && containsSlot(candidates, *p.prevSlot) && free(*p.prevSlot) {
		return occupy(*p.prevSlot), outcomeKept
	}

	slot, ok := pickSlot(candidates, func(candidate types.TimeString) bool {
		if taken[candidate] || !free(candidate) {
			return false
		}
		if req.MaxConsecutive > 0 &&
			runBefore(buyerBusy, p.buyer, p.day, candidate, req.Interval) >= req.MaxConsecutive {
			return false
		}
		return true
	})
	if !ok {
		return domain.Appointment{}, outcomeSkipped
	}

	appt := occupy(slot)
	if p.prevSlot == nil {
		return appt, outcomeAdded
	}
	return appt, outcomeMoved
}

func containsSlot(candidates []types.TimeString, slot types.TimeString) bool {
	for _, c := range candidates {
		if c == slot {
			return true
		}
	}
	return false
}

// pickSlot returns the first admissible candidate in ascending order.
func pickSlot(candidates []types.TimeString, admissible func(types.TimeString) bool) (types.TimeString, bool) {
	for _, c := range candidates {
		if admissible(c) {
			return c, true
		}
	}
	return "", false
}

// runBefore counts the buyer's contiguous occupied slots immediately
// preceding the candidate, stepping back by the interval.
func runBefore(buyerBusy map[occupant]bool, buyer string, day domain.Day, slot types.TimeString, interval int) int {
	run := 0
	m := slot.Minutes() - interval
	for m >= 0 {
		prev := types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
		if !buyerBusy[occupant{day: day, slot: prev, name: buyer}] {
			break
		}
		run++
		m -= interval
	}
	return run
}
