package models

// MarkerSpec describes one map marker: position, popup content and the icon
// glyph drawn inside the pin.
type MarkerSpec struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	PopupHTML string  `json:"popup_html"`
	Icon      string  `json:"icon"`
}

// LayerSpec is one toggle-able marker layer, keyed by its group label.
type LayerSpec struct {
	Name    string       `json:"name"`
	Color   string       `json:"color"`
	Visible bool         `json:"visible"`
	Markers []MarkerSpec `json:"markers"`
}

// MapSpec is the complete, immutable input handed to the map widget: every
// layer with its style and visibility default, built once per snapshot.
type MapSpec struct {
	CenterLat float64     `json:"center_lat"`
	CenterLon float64     `json:"center_lon"`
	Zoom      int         `json:"zoom"`
	Layers    []LayerSpec `json:"layers"`
}

// Column pairs a record field key with its human-readable table header.
type Column struct {
	Key    string `json:"key"`
	Header string `json:"header"`
}

// TableSpec is the input handed to the table widget: projected columns in
// fixed order, pre-sorted rows and the client-side page size.
type TableSpec struct {
	Columns  []Column   `json:"columns"`
	Rows     [][]string `json:"rows"`
	PageSize int        `json:"page_size"`
}
