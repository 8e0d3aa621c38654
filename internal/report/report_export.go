package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Data", "Tipo", "Horário"}

// ExportCSV renders an employee's events in the range as the CSV the
// web client used to assemble by hand: Data,Tipo,Horário.
func (s *service) ExportCSV(ctx context.Context, employeeID, start, end string) ([]byte, error) {
	events, err := s.punches.ListEvents(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, ev := range events {
		if err := w.Write([]string{ev.Date, ev.Type, ev.Time}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the same rows as a single-sheet spreadsheet.
func (s *service) ExportXLSX(ctx context.Context, employeeID, start, end string) ([]byte, error) {
	events, err := s.punches.ListEvents(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Pontos"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, ev := range events {
		row := i + 2
		values := []string{ev.Date, ev.Type, ev.Time}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
