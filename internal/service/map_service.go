package service

import (
	"math/rand"

	"ipmap-dashboard/internal/models"
)

// layerColors maps each group, in label order, to its marker color.
var layerColors = []string{"red", "blue", "green"}

// iconVariants are the glyphs drawn inside a marker pin. Each marker gets
// one variant, sampled independently of every record attribute.
var iconVariants = []string{"circle", "star", "flag"}

// Default viewport when the dataset is empty: whole-world view.
const (
	worldCenterLat = 20.0
	worldCenterLon = 0.0
	worldZoom      = 2
)

// MapService turns labeled category views into the immutable MapSpec the
// map widget renders from.
type MapService struct {
	rng *rand.Rand
}

// NewMapService creates a map service. The random source picks per-marker
// icon variants; callers own its seeding.
func NewMapService(rng *rand.Rand) *MapService {
	return &MapService{rng: rng}
}

// BuildMapSpec produces one layer per view, in view order: distinct colors,
// the layer named after its group label, and only the first layer visible by
// default. Empty views yield empty layers.
func (s *MapService) BuildMapSpec(views []models.CategoryView) models.MapSpec {
	spec := models.MapSpec{
		CenterLat: worldCenterLat,
		CenterLon: worldCenterLon,
		Zoom:      worldZoom,
		Layers:    make([]models.LayerSpec, 0, len(views)),
	}

	var latSum, lonSum float64
	total := 0
	for i, view := range views {
		layer := models.LayerSpec{
			Name:    view.Label,
			Color:   layerColors[i%len(layerColors)],
			Visible: i == 0,
			Markers: make([]models.MarkerSpec, 0, len(view.Records)),
		}
		for _, r := range view.Records {
			layer.Markers = append(layer.Markers, models.MarkerSpec{
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
				PopupHTML: FormatPopup(r),
				Icon:      iconVariants[s.rng.Intn(len(iconVariants))],
			})
			latSum += r.Latitude
			lonSum += r.Longitude
			total++
		}
		spec.Layers = append(spec.Layers, layer)
	}

	if total > 0 {
		spec.CenterLat = latSum / float64(total)
		spec.CenterLon = lonSum / float64(total)
	}
	return spec
}
