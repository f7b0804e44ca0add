package handler

import (
	"encoding/json"
	"html/template"
	"net/http"

	"ipmap-dashboard/internal/models"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard page and the JSON API over one
// immutable snapshot built at startup.
type DashboardHandler struct {
	records   []models.Record
	mapSpec   models.MapSpec
	tableSpec models.TableSpec
	dropped   int
}

// NewDashboardHandler creates a handler over a fully built snapshot.
func NewDashboardHandler(records []models.Record, mapSpec models.MapSpec, tableSpec models.TableSpec, dropped int) *DashboardHandler {
	if records == nil {
		records = []models.Record{}
	}
	return &DashboardHandler{
		records:   records,
		mapSpec:   mapSpec,
		tableSpec: tableSpec,
		dropped:   dropped,
	}
}

// Template returns the parsed dashboard page template for gin to register.
func Template() *template.Template {
	return template.Must(template.New("dashboard").Parse(dashboardHTML))
}

type dashboardPage struct {
	Total     int
	Dropped   int
	MapJSON   template.JS
	TableJSON template.JS
}

// Dashboard handles GET / requests
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	mapJSON, err := json.Marshal(h.mapSpec)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	tableJSON, err := json.Marshal(h.tableSpec)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "dashboard", dashboardPage{
		Total:     len(h.records),
		Dropped:   h.dropped,
		MapJSON:   template.JS(mapJSON),
		TableJSON: template.JS(tableJSON),
	})
}
