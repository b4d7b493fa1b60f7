package export_schedule

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ubagofish/scheduler-service/internal/domain"
	"github.com/ubagofish/scheduler-service/pkg/types"
)

const (
	lunchLabel = "LUNCH BREAK"

	headerFillColor = "305496"
	lunchFillColor  = "D9D9D9"
	fontName        = "Calibri"
	fontSize        = 11
)

// workbookBuilder assembles the export workbook: one buyer-indexed and
// one client-indexed sheet per day with appointments, plus a totals
// sheet per role.
type workbookBuilder struct {
	file *excelize.File
	grid domain.Grid

	baseStyle   int
	headerStyle int
	lunchStyle  int
}

func newWorkbookBuilder(settings domain.Settings) (*workbookBuilder, error) {
	f := excelize.NewFile()

	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	baseStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: fontSize},
		Alignment: center,
		Border:    border,
	})
	if err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: fontSize, Bold: true, Color: "FFFFFF"},
		Alignment: center,
		Border:    border,
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
	})
	if err != nil {
		return nil, err
	}

	lunchStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: fontSize},
		Alignment: center,
		Border:    border,
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{lunchFillColor}},
	})
	if err != nil {
		return nil, err
	}

	return &workbookBuilder{
		file:        f,
		grid:        domain.NewGrid(settings),
		baseStyle:   baseStyle,
		headerStyle: headerStyle,
		lunchStyle:  lunchStyle,
	}, nil
}

// addDaySheet writes one sheet: a Time column plus one column per name,
// where each cell joins the counterpart names meeting that participant
// at that slot. byBuyer selects which side indexes the columns.
func (b *workbookBuilder) addDaySheet(sheet string, day domain.Day, names []string, appointments []domain.Appointment, byBuyer bool) error {
	if _, err := b.file.NewSheet(sheet); err != nil {
		return err
	}

	headers := append([]string{"Time"}, names...)
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	slots := b.grid.Slots()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for row, slot := range slots {
		if err := b.setCell(sheet, 1, row+2, slot.String(), &widths[0]); err != nil {
			return err
		}
		for col, name := range names {
			value := b.cellValue(day, slot, name, appointments, byBuyer)
			if err := b.setCell(sheet, col+2, row+2, value, &widths[col+1]); err != nil {
				return err
			}
		}
	}

	return b.styleSheet(sheet, len(headers), len(slots), widths)
}

func (b *workbookBuilder) cellValue(day domain.Day, slot types.TimeString, name string, appointments []domain.Appointment, byBuyer bool) string {
	if b.grid.InLunch(slot) {
		return lunchLabel
	}
	value := ""
	for _, a := range appointments {
		if a.Day != day || a.Slot != slot {
			continue
		}
		counterpart := ""
		if byBuyer && a.Buyer == name {
			counterpart = a.Client
		} else if !byBuyer && a.Client == name {
			counterpart = a.Buyer
		} else {
			continue
		}
		if value != "" {
			value += ", "
		}
		value += counterpart
	}
	return value
}

// addSummarySheet writes name/total rows for one role.
func (b *workbookBuilder) addSummarySheet(sheet, roleHeader string, names []string, totals map[string]int) error {
	if _, err := b.file.NewSheet(sheet); err != nil {
		return err
	}

	widths := []int{len(roleHeader), len("Total Appointments")}
	if err := b.setCell(sheet, 1, 1, roleHeader, &widths[0]); err != nil {
		return err
	}
	if err := b.setCell(sheet, 2, 1, "Total Appointments", &widths[1]); err != nil {
		return err
	}

	for row, name := range names {
		if err := b.setCell(sheet, 1, row+2, name, &widths[0]); err != nil {
			return err
		}
		if err := b.setCell(sheet, 2, row+2, fmt.Sprintf("%d", totals[name]), &widths[1]); err != nil {
			return err
		}
	}

	return b.styleSheet(sheet, 2, len(names), widths)
}

func (b *workbookBuilder) setCell(sheet string, col, row int, value string, width *int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if len(value) > *width {
		*width = len(value)
	}
	return b.file.SetCellValue(sheet, cell, value)
}

// styleSheet applies the header, lunch and base styles and sizes every
// column to its longest cell plus two.
func (b *workbookBuilder) styleSheet(sheet string, cols, dataRows int, widths []int) error {
	lastCell, err := excelize.CoordinatesToCellName(cols, dataRows+1)
	if err != nil {
		return err
	}
	if err := b.file.SetCellStyle(sheet, "A1", lastCell, b.baseStyle); err != nil {
		return err
	}

	headerEnd, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := b.file.SetCellStyle(sheet, "A1", headerEnd, b.headerStyle); err != nil {
		return err
	}

	// Shade lunch cells individually; they are sparse.
	rows, err := b.file.GetRows(sheet)
	if err != nil {
		return err
	}
	for r, row := range rows {
		for c, value := range row {
			if value != lunchLabel {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := b.file.SetCellStyle(sheet, cell, cell, b.lunchStyle); err != nil {
				return err
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := b.file.SetColWidth(sheet, col, col, float64(w+2)); err != nil {
			return err
		}
	}
	return nil
}

// build renders the workbook bytes.
func (b *workbookBuilder) build(buyers, clients []string, appointments []domain.Appointment) ([]byte, error) {
	daysWithAppointments := make(map[domain.Day]bool)
	buyerTotals := make(map[string]int)
	clientTotals := make(map[string]int)
	for _, a := range appointments {
		daysWithAppointments[a.Day] = true
		buyerTotals[a.Buyer]++
		clientTotals[a.Client]++
	}

	for _, day := range domain.Days {
		if !daysWithAppointments[day] {
			continue
		}
		if err := b.addDaySheet(fmt.Sprintf("Buyers_%s", day), day, buyers, appointments, true); err != nil {
			return nil, err
		}
		if err := b.addDaySheet(fmt.Sprintf("Clients_%s", day), day, clients, appointments, false); err != nil {
			return nil, err
		}
	}

	if err := b.addSummarySheet("Summary_Buyers", "Buyer", buyers, buyerTotals); err != nil {
		return nil, err
	}
	if err := b.addSummarySheet("Summary_Clients", "Client", clients, clientTotals); err != nil {
		return nil, err
	}

	// Drop the implicit default sheet; summaries guarantee the workbook
	// is never empty.
	if err := b.file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	buf, err := b.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
