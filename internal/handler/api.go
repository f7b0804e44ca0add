package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Records godoc
// @Summary      List all labeled records
// @Description  Returns every loaded record with its assigned group label.
// @Tags         records
// @Produce      json
// @Success      200  {array}  models.Record
// @Router       /api/records [get]
func (h *DashboardHandler) Records(c *gin.Context) {
	c.JSON(http.StatusOK, h.records)
}

// MapSpec godoc
// @Summary      Map rendering specification
// @Description  Returns the layer list the map widget renders: per-group color, visibility default and markers with popup HTML.
// @Tags         rendering
// @Produce      json
// @Success      200  {object}  models.MapSpec
// @Router       /api/map [get]
func (h *DashboardHandler) MapSpec(c *gin.Context) {
	c.JSON(http.StatusOK, h.mapSpec)
}

// TableSpec godoc
// @Summary      Table rendering specification
// @Description  Returns the projected columns and pre-sorted rows the table widget renders.
// @Tags         rendering
// @Produce      json
// @Success      200  {object}  models.TableSpec
// @Router       /api/table [get]
func (h *DashboardHandler) TableSpec(c *gin.Context) {
	c.JSON(http.StatusOK, h.tableSpec)
}
