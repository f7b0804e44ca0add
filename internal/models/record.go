package models

// Group labels assigned to records after load. Assignment is random but the
// set of labels is fixed.
const (
	GroupA = "Group A"
	GroupB = "Group B"
	GroupC = "Group C"
)

// GroupLabels lists the labels in their fixed display order.
var GroupLabels = []string{GroupA, GroupB, GroupC}

// Record represents a single synthetic IP observation with its pre-computed
// geolocation. String fields may be empty; coordinates are always present.
type Record struct {
	IP          string  `json:"ip"`
	CountryCode string  `json:"country_code"`
	CountryName string  `json:"country_name"`
	RegionCode  string  `json:"region_code"`
	RegionName  string  `json:"region_name"`
	City        string  `json:"city"`
	ZipCode     string  `json:"zip_code"`
	TimeZone    string  `json:"time_zone"`
	MetroCode   string  `json:"metro_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Group       string  `json:"group"`
}

// CategoryView is the read-only subset of a record set sharing one group label.
type CategoryView struct {
	Label   string   `json:"label"`
	Records []Record `json:"records"`
}
