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

// SectorMapper aggregates product-level trade records into the model's
// economic sectors using HS92 chapter classification. Input CSV columns:
// year, hs_code, export_value (billion USD).
type SectorMapper struct {
	path   string
	byYear map[int]map[string]float64
}

// jute products sit inside chapter 53 alongside other vegetable fibres, so
// matching is by heading prefix rather than whole chapter.
var juteHeadings = []string{"5303", "5307", "5310"}

// SectorForHS maps an HS92 code to a model sector. Codes outside the modeled
// sectors map to "other".
func SectorForHS(hsCode string) string {
	hs := strings.TrimSpace(hsCode)
	if len(hs) < 2 {
		return "other"
	}
	chapter, err := strconv.Atoi(hs[:2])
	if err != nil {
		return "other"
	}
	for _, h := range juteHeadings {
		if strings.HasPrefix(hs, h) {
			return "jute"
		}
	}
	if strings.HasPrefix(hs, "8471") || strings.HasPrefix(hs, "8473") {
		return "it_services"
	}
	switch chapter {
	case 61, 62:
		return "rmg"
	case 41, 42, 43, 64:
		return "leather"
	case 3, 16:
		return "frozen_food"
	case 30:
		return "pharma"
	case 85:
		return "it_services"
	case 73, 76, 84, 87:
		return "light_engineering"
	case 7, 8, 9, 10, 11, 12, 15, 17, 18, 19, 20, 21, 22, 23, 24:
		return "agro_processing"
	case 63:
		return "home_textiles"
	case 89:
		return "shipbuilding"
	}
	return "other"
}

// NewSectorMapper reads and aggregates the product-level file at path.
func NewSectorMapper(path string) (*SectorMapper, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open product trade csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	yearCol, codeCol, valueCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "year":
			yearCol = i
		case "hs_code":
			codeCol = i
		case "export_value":
			valueCol = i
		}
	}
	if yearCol < 0 || codeCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("csv %s missing required columns year/hs_code/export_value", path)
	}

	m := &SectorMapper{path: path, byYear: make(map[int]map[string]float64)}
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
		sector := SectorForHS(record[codeCol])
		if m.byYear[year] == nil {
			m.byYear[year] = make(map[string]float64)
		}
		m.byYear[year][sector] += value
		row++
	}
	logrus.Infof("sector mapper aggregated %s: %d years", path, len(m.byYear))
	return m, nil
}

// Name implements Provider.
func (m *SectorMapper) Name() string { return "sector-mapper" }

// SectorExports implements Provider. The returned map is a copy and excludes
// the catch-all "other" bucket, which has no counterpart in the model.
func (m *SectorMapper) SectorExports(year int) (map[string]float64, error) {
	data, ok := m.byYear[year]
	if !ok {
		return nil, nil
	}
	out := make(map[string]float64, len(data))
	for sector, v := range data {
		if sector == "other" {
			continue
		}
		out[sector] = v
	}
	return out, nil
}
