package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"ipmap-dashboard/internal/models"
)

// Sentinel errors classifying a failed load.
var (
	// ErrSchema marks a missing/unreadable file or a header without the
	// required columns. Always fatal for the load.
	ErrSchema = errors.New("dataset schema mismatch")
	// ErrCoordinate marks a latitude/longitude that cannot be parsed as a
	// finite number. Fatal in strict mode, otherwise the row is dropped.
	ErrCoordinate = errors.New("invalid coordinate")
)

var requiredColumns = []string{"ip", "country_name", "region_name", "city", "time_zone", "latitude", "longitude"}

// CSVRepository loads the static IP dataset from a CSV file on disk.
type CSVRepository struct {
	path   string
	strict bool
}

// NewCSVRepository creates a repository reading from the given file. With
// strict set, any malformed coordinate aborts the whole load; otherwise the
// offending rows are dropped and counted.
func NewCSVRepository(path string, strict bool) *CSVRepository {
	return &CSVRepository{path: path, strict: strict}
}

// LoadRecords reads the entire dataset in one pass. It returns the records
// in file order plus the number of rows dropped for unparseable coordinates
// (always zero in strict mode).
func (r *CSVRepository) LoadRecords(ctx context.Context) ([]models.Record, int, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to open dataset %s: %w (%w)", r.path, err, ErrSchema)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to read header: %w (%w)", err, ErrSchema)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, 0, fmt.Errorf("repository: required column %q not in header: %w", name, ErrSchema)
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := []models.Record{}
	dropped := 0
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, 0, fmt.Errorf("repository: load cancelled: %w", err)
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("repository: failed to read row: %w (%w)", err, ErrSchema)
		}
		line++

		lat, latErr := parseCoordinate(field(row, "latitude"))
		lon, lonErr := parseCoordinate(field(row, "longitude"))
		if latErr != nil || lonErr != nil {
			if r.strict {
				return nil, 0, fmt.Errorf("repository: row %d: %w", line, errors.Join(latErr, lonErr))
			}
			dropped++
			continue
		}

		records = append(records, models.Record{
			IP:          field(row, "ip"),
			CountryCode: field(row, "country_code"),
			CountryName: field(row, "country_name"),
			RegionCode:  field(row, "region_code"),
			RegionName:  field(row, "region_name"),
			City:        field(row, "city"),
			ZipCode:     field(row, "zip_code"),
			TimeZone:    field(row, "time_zone"),
			MetroCode:   field(row, "metro_code"),
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	return records, dropped, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCoordinate, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite value %q", ErrCoordinate, s)
	}
	return v, nil
}
