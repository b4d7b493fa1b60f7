package export_schedule

import "errors"

var (
	// ErrBuildWorkbook is returned when the workbook cannot be assembled
	ErrBuildWorkbook = errors.New("failed to build schedule workbook")

	// ErrInternal is returned for internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
