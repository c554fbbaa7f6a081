package tradedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// WorkbookHandler serves sector exports from an Excel workbook with one sheet
// per year (sheet name = year). Each sheet carries a header row followed by
// sector / export_value rows. The workbook is read fully at construction and
// closed before returning.
type WorkbookHandler struct {
	path   string
	byYear map[int]map[string]float64
}

// NewWorkbookHandler opens and indexes the workbook at path. Sheets whose
// names do not parse as years are skipped with a warning; malformed rows
// within a year sheet fail the whole load.
func NewWorkbookHandler(path string) (*WorkbookHandler, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open trade workbook: %w", err)
	}
	defer f.Close()

	h := &WorkbookHandler{path: path, byYear: make(map[int]map[string]float64)}
	for _, sheet := range f.GetSheetList() {
		year, err := strconv.Atoi(strings.TrimSpace(sheet))
		if err != nil {
			logrus.Warnf("skipping workbook sheet %q: name is not a year", sheet)
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}
		sectorCol, valueCol := -1, -1
		for i, name := range rows[0] {
			switch strings.TrimSpace(strings.ToLower(name)) {
			case "sector":
				sectorCol = i
			case "export_value":
				valueCol = i
			}
		}
		if sectorCol < 0 || valueCol < 0 {
			return nil, fmt.Errorf("sheet %s missing sector/export_value columns", sheet)
		}
		data := make(map[string]float64)
		for r, row := range rows[1:] {
			if len(row) <= sectorCol || len(row) <= valueCol {
				continue
			}
			sector := strings.TrimSpace(row[sectorCol])
			if sector == "" {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64)
			if err != nil {
				return nil, fmt.Errorf("sheet %s row %d: invalid export_value: %w", sheet, r+2, err)
			}
			data[sector] += value
		}
		h.byYear[year] = data
	}
	logrus.Infof("loaded trade workbook %s: %d year sheets", path, len(h.byYear))
	return h, nil
}

// Name implements Provider.
func (h *WorkbookHandler) Name() string { return "workbook" }

// SectorExports implements Provider. The returned map is a copy.
func (h *WorkbookHandler) SectorExports(year int) (map[string]float64, error) {
	data, ok := h.byYear[year]
	if !ok {
		return nil, nil
	}
	out := make(map[string]float64, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out, nil
}
