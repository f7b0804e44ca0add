package service

import (
	"strings"
	"testing"

	"ipmap-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatPopup(t *testing.T) {
	tests := []struct {
		name     string
		record   models.Record
		contains []string
		excludes []string
	}{
		{
			name: "all fields present",
			record: models.Record{
				IP:          "1.2.3.4",
				CountryName: "France",
				RegionName:  "Ile-de-France",
				City:        "Paris",
				TimeZone:    "Europe/Paris",
				Group:       models.GroupA,
			},
			contains: []string{
				"<b>1.2.3.4</b>",
				"Country: France",
				"Region: Ile-de-France",
				"City: Paris",
				"Time zone: Europe/Paris",
				"Group: Group A",
			},
		},
		{
			name:   "empty fields become unknown",
			record: models.Record{IP: "5.6.7.8", Group: models.GroupB},
			contains: []string{
				"<b>5.6.7.8</b>",
				"Country: unknown",
				"Region: unknown",
				"City: unknown",
				"Time zone: unknown",
				"Group: Group B",
			},
		},
		{
			name: "values are escaped",
			record: models.Record{
				IP:          "1.1.1.1",
				CountryName: "<script>alert(1)</script>",
			},
			contains: []string{"Country: &lt;script&gt;alert(1)&lt;/script&gt;"},
			excludes: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPopup(tt.record)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, banned := range tt.excludes {
				assert.NotContains(t, got, banned)
			}
		})
	}
}

func TestFormatPopup_FieldOrder(t *testing.T) {
	got := FormatPopup(models.Record{
		IP:          "1.2.3.4",
		CountryName: "Testland",
		RegionName:  "Test State",
		City:        "Testville",
		TimeZone:    "Test/Zone",
		Group:       models.GroupC,
	})

	order := []string{"1.2.3.4", "Country:", "Region:", "City:", "Time zone:", "Group:"}
	last := -1
	for _, marker := range order {
		i := strings.Index(got, marker)
		assert.Greater(t, i, last, "%q out of order in %q", marker, got)
		last = i
	}
}
