package service

import (
	"fmt"
	"html"
	"strings"

	"ipmap-dashboard/internal/models"
)

// unknownValue replaces empty string fields at display time. Empty means
// "the geolocation source had no value", never "absent".
const unknownValue = "unknown"

// FormatPopup builds the HTML fragment shown when a marker is clicked.
// Field order is fixed: IP, country, region, city, time zone, group. All
// values are HTML-escaped before interpolation.
func FormatPopup(r models.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b><br>", html.EscapeString(r.IP))
	fmt.Fprintf(&b, "Country: %s<br>", displayValue(r.CountryName))
	fmt.Fprintf(&b, "Region: %s<br>", displayValue(r.RegionName))
	fmt.Fprintf(&b, "City: %s<br>", displayValue(r.City))
	fmt.Fprintf(&b, "Time zone: %s<br>", displayValue(r.TimeZone))
	fmt.Fprintf(&b, "Group: %s", displayValue(r.Group))
	return b.String()
}

func displayValue(s string) string {
	if s == "" {
		return unknownValue
	}
	return html.EscapeString(s)
}
