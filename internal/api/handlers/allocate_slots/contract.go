package allocate_slots

import (
	"context"

	allocateSlots "github.com/ubagofish/scheduler-service/internal/usecase/allocate_slots"
)

type AllocateSlotsUseCase interface {
	Execute(ctx context.Context, req *allocateSlots.Request) (*allocateSlots.Response, error)
}

// Metrics records allocation outcomes; may be nil when metrics are off
type Metrics interface {
	ObserveAllocation(kept, added, moved, skipped int)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
