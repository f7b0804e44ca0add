package service

import (
	"sort"

	"ipmap-dashboard/internal/models"
)

// tableColumns is the fixed projection shown in the data table. Internal
// codes and raw coordinates stay out of the table on purpose.
var tableColumns = []models.Column{
	{Key: "ip", Header: "IP address"},
	{Key: "country_name", Header: "Country name"},
	{Key: "region_name", Header: "Region name"},
	{Key: "city", Header: "City"},
	{Key: "zip_code", Header: "Zip code"},
	{Key: "time_zone", Header: "Time zone"},
	{Key: "group", Header: "Group"},
}

const tablePageSize = 25

// TableService projects the labeled record set into the shape the table
// widget consumes.
type TableService struct{}

// NewTableService creates a table service
func NewTableService() *TableService {
	return &TableService{}
}

// BuildTableSpec returns the fixed column projection with rows sorted by
// country name ascending. Sorting is stable so equal countries keep their
// load order. The input slice is not modified.
func (s *TableService) BuildTableSpec(records []models.Record) models.TableSpec {
	sorted := make([]models.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CountryName < sorted[j].CountryName
	})

	rows := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, []string{
			r.IP,
			r.CountryName,
			r.RegionName,
			r.City,
			r.ZipCode,
			r.TimeZone,
			r.Group,
		})
	}

	return models.TableSpec{
		Columns:  tableColumns,
		Rows:     rows,
		PageSize: tablePageSize,
	}
}
