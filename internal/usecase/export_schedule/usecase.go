package export_schedule

import (
	"context"
	"fmt"
)

const exportFilename = "ubagofish_schedule.xlsx"

// UseCase renders the schedule as a styled spreadsheet.
type UseCase struct {
	store  ScheduleStore
	logger Logger
}

// NewUseCase creates the export usecase.
func NewUseCase(store ScheduleStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute builds the workbook from a read-only snapshot of the store.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	buyers := uc.store.Buyers()
	clients := uc.store.Clients()
	appointments := uc.store.Appointments()

	builder, err := newWorkbookBuilder(uc.store.Settings())
	if err != nil {
		uc.logger.Error("ExportSchedule: failed to prepare workbook: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBuildWorkbook, err)
	}

	data, err := builder.build(buyers, clients, appointments)
	if err != nil {
		uc.logger.Error("ExportSchedule: failed to render workbook: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBuildWorkbook, err)
	}

	uc.logger.Info("ExportSchedule: rendered %d appointments into %d bytes", len(appointments), len(data))
	return &Response{
		Filename: exportFilename,
		Data:     data,
	}, nil
}
