package tradedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// CSVHandler serves pre-aggregated yearly sector exports from a CSV file with
// columns year, sector, export_value (billion USD). The whole file is read
// once at construction; year lookups are in-memory afterwards.
type CSVHandler struct {
	path   string
	byYear map[int]map[string]float64
}

// NewCSVHandler loads the file at path. Errors are returned rather than
// logged so the caller decides whether absence is fatal (for the kernel it
// never is).
func NewCSVHandler(path string) (*CSVHandler, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trade data csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	yearCol, sectorCol, valueCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "year":
			yearCol = i
		case "sector":
			sectorCol = i
		case "export_value":
			valueCol = i
		}
	}
	if yearCol < 0 || sectorCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("csv %s missing required columns year/sector/export_value", path)
	}

	h := &CSVHandler{path: path, byYear: make(map[int]map[string]float64)}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[yearCol]))
		if err != nil {
			return nil, fmt.Errorf("invalid year at row %d: %w", row, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[valueCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid export_value at row %d: %w", row, err)
		}
		sector := strings.TrimSpace(record[sectorCol])
		if h.byYear[year] == nil {
			h.byYear[year] = make(map[string]float64)
		}
		h.byYear[year][sector] += value
		row++
	}
	logrus.Infof("loaded trade data csv %s: %d years", path, len(h.byYear))
	return h, nil
}

// Name implements Provider.
func (h *CSVHandler) Name() string { return "csv" }

// Years returns the set of years present in the file.
func (h *CSVHandler) Years() []int {
	years := make([]int, 0, len(h.byYear))
	for y := range h.byYear {
		years = append(years, y)
	}
	return years
}

// SectorExports implements Provider. The returned map is a copy.
func (h *CSVHandler) SectorExports(year int) (map[string]float64, error) {
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
