package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validDataset = `ip,country_code,country_name,region_code,region_name,city,zip_code,time_zone,metro_code,latitude,longitude
1.2.3.4,TL,Testland,TS,Test State,Testville,12345,Test/Zone,807,10.5,-20.25
5.6.7.8,,,,,,,,,0,0
9.9.9.9,NW,Nowhere,,,,,,,-33.8688,151.2093
`

func TestCSVRepository_LoadRecords(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		strict      bool
		wantCount   int
		wantDropped int
		wantErr     error
	}{
		{
			name:      "valid dataset",
			content:   validDataset,
			wantCount: 3,
		},
		{
			name:      "header only",
			content:   "ip,country_name,region_name,city,time_zone,latitude,longitude\n",
			wantCount: 0,
		},
		{
			name:    "missing required column",
			content: "ip,country_name,region_name,city,time_zone,latitude\n1.2.3.4,X,Y,Z,T/Z,1.0\n",
			wantErr: ErrSchema,
		},
		{
			name: "bad coordinate lenient drops row",
			content: "ip,country_name,region_name,city,time_zone,latitude,longitude\n" +
				"1.2.3.4,Testland,,,,10.5,-20.25\n" +
				"5.6.7.8,Badland,,,,not-a-number,0\n",
			wantCount:   1,
			wantDropped: 1,
		},
		{
			name: "bad coordinate strict fails load",
			content: "ip,country_name,region_name,city,time_zone,latitude,longitude\n" +
				"5.6.7.8,Badland,,,,not-a-number,0\n",
			strict:  true,
			wantErr: ErrCoordinate,
		},
		{
			name: "non-finite coordinate rejected",
			content: "ip,country_name,region_name,city,time_zone,latitude,longitude\n" +
				"5.6.7.8,Badland,,,,NaN,0\n",
			strict:  true,
			wantErr: ErrCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewCSVRepository(writeDataset(t, tt.content), tt.strict)

			records, dropped, err := repo.LoadRecords(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.wantCount)
			assert.Equal(t, tt.wantDropped, dropped)
		})
	}
}

func TestCSVRepository_LoadRecords_Fields(t *testing.T) {
	repo := NewCSVRepository(writeDataset(t, validDataset), false)

	records, dropped, err := repo.LoadRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Zero(t, dropped)

	first := records[0]
	assert.Equal(t, "1.2.3.4", first.IP)
	assert.Equal(t, "TL", first.CountryCode)
	assert.Equal(t, "Testland", first.CountryName)
	assert.Equal(t, "Test State", first.RegionName)
	assert.Equal(t, "Testville", first.City)
	assert.Equal(t, "12345", first.ZipCode)
	assert.Equal(t, "Test/Zone", first.TimeZone)
	assert.Equal(t, "807", first.MetroCode)
	assert.Equal(t, 10.5, first.Latitude)
	assert.Equal(t, -20.25, first.Longitude)

	// empty string fields stay empty, never something else
	second := records[1]
	assert.Equal(t, "5.6.7.8", second.IP)
	assert.Empty(t, second.CountryName)
	assert.Zero(t, second.Latitude)

	// file order is preserved
	assert.Equal(t, "9.9.9.9", records[2].IP)
}

func TestCSVRepository_LoadRecords_MissingFile(t *testing.T) {
	repo := NewCSVRepository(filepath.Join(t.TempDir(), "absent.csv"), false)

	_, _, err := repo.LoadRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestCSVRepository_LoadRecords_Cancelled(t *testing.T) {
	repo := NewCSVRepository(writeDataset(t, validDataset), false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.LoadRecords(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
