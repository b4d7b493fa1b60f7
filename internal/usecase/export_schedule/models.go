package export_schedule

// Response carries the rendered workbook.
type Response struct {
	Filename string
	Data     []byte
}
