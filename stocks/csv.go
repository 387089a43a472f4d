package stocks

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/vedantwpatil/trendbot/models"
)

// LoadCSV reads a price file with a date column and the named price column.
// Header names are matched case-insensitively; rows may be in any order.
func LoadCSV(path, priceColumn string) (models.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.PriceSeries{}, err
	}
	defer f.Close()
	return ReadCSV(f, priceColumn)
}

func ReadCSV(r io.Reader, priceColumn string) (models.PriceSeries, error) {
	if priceColumn == "" {
		priceColumn = "close"
	}
	priceColumn = strings.ToLower(priceColumn)

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return models.PriceSeries{}, fmt.Errorf("read csv header: %w", err)
	}

	dateIdx, priceIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date":
			dateIdx = i
		case priceColumn:
			priceIdx = i
		}
	}
	if dateIdx < 0 {
		return models.PriceSeries{}, fmt.Errorf("csv must contain a 'date' column")
	}
	if priceIdx < 0 {
		return models.PriceSeries{}, fmt.Errorf("csv must contain '%s' column", priceColumn)
	}

	var points []models.PricePoint
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.PriceSeries{}, fmt.Errorf("read csv line %d: %w", line, err)
		}
		d, err := parseDate(rec[dateIdx])
		if err != nil {
			return models.PriceSeries{}, fmt.Errorf("line %d: %w", line, err)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(rec[priceIdx]), 64)
		if err != nil {
			return models.PriceSeries{}, fmt.Errorf("line %d: bad %s value %q", line, priceColumn, rec[priceIdx])
		}
		points = append(points, models.PricePoint{Time: d, Close: p})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return models.NewPriceSeries(points)
}
