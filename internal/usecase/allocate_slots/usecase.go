package allocate_slots

import (
	"context"
	"fmt"

	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

// UseCase runs one allocation pass: a full reflow of the unlocked
// appointments for the targeted buyers, clients and days.
type UseCase struct {
	store  ScheduleStore
	logger Logger
}

// NewUseCase creates the allocator usecase.
func NewUseCase(store ScheduleStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute validates the request, clears the targeted unlocked
// appointments, re-derives them with greedy first-fit placement and
// commits the result atomically. An unassignable pairing is a non-fatal
// skip; an empty selection is a no-op with zero counts.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateSlots: buyers=%d, clients=%d, days=%d, interval=%d, balance=%t, maxConsecutive=%d",
		len(req.Buyers), len(req.Clients), len(req.Days), req.Interval, req.BalanceDays, req.MaxConsecutive)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{Summaries: make(map[domain.Day]DaySummary)}
	if len(req.Buyers) == 0 || len(req.Clients) == 0 || len(req.Days) == 0 {
		uc.logger.Info("AllocateSlots: empty selection, nothing to do")
		return resp, nil
	}

	settings := uc.store.Settings()
	grid := domain.NewGrid(settings)
	snapshot := uc.store.Appointments()

	selBuyers := toSet(req.Buyers)
	selClients := toSet(req.Clients)
	selDays := make(map[domain.Day]bool, len(req.Days))
	for _, d := range req.Days {
		selDays[d] = true
	}

	// Unlocked appointments in the targeted scope are cleared and fully
	// re-derived; everything else survives untouched and pre-occupies
	// its slots for conflict checks.
	surviving := make([]domain.Appointment, 0, len(snapshot))
	prevSlots := make(map[pairingID]types.TimeString)
	for _, a := range snapshot {
		if !a.Locked && selBuyers[a.Buyer] && selClients[a.Client] && selDays[a.Day] {
			id := pairingID{client: a.Client, buyer: a.Buyer, day: a.Day}
			if _, ok := prevSlots[id]; !ok {
				prevSlots[id] = a.Slot
			}
			continue
		}
		surviving = append(surviving, a)
	}

	alloc, err := allocate(grid, req, surviving, prevSlots)
	if err != nil {
		uc.logger.Error("AllocateSlots: placement failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := uc.store.ReplaceUnlocked(selBuyers, selClients, selDays, alloc.placed); err != nil {
		uc.logger.Error("AllocateSlots: failed to commit allocation: %v", err)
		return nil, fmt.Errorf("%w: failed to commit allocation: %v", ErrInternal, err)
	}

	resp.Placed = alloc.placed
	for day, summary := range alloc.summaries {
		resp.Summaries[day] = summary
		resp.Total.add(summary)
	}

	uc.logger.Info("AllocateSlots: done, kept=%d added=%d moved=%d skipped=%d",
		resp.Total.Kept, resp.Total.Added, resp.Total.Moved, resp.Total.Skipped)
	return resp, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
