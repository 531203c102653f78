// Package procgen builds the starting map. Only a flat rectangle is
// generated for now; terrain and resource placement come later.
package procgen

import (
	"fmt"
	"math"

	"github.com/unshrouded/core/internal/hexmap"
)

type MapGeneratorSettings struct {
	Width  int // columns
	Height int // rows
}

type MapGenerator struct {
	settings MapGeneratorSettings
}

func FromSettings(settings MapGeneratorSettings) *MapGenerator {
	return &MapGenerator{settings: settings}
}

func (g *MapGenerator) Settings() MapGeneratorSettings { return g.settings }

// Generate lays out Width x Height flat tiles with the top-left tile at the
// origin. Every tile has elevation 0 and empty layers.
func (g *MapGenerator) Generate() (*hexmap.Map, error) {
	w, h := g.settings.Width, g.settings.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("procgen: map size %dx%d must be positive", w, h)
	}
	// Rows shift by up to half the width in axial space.
	if w > math.MaxInt16/2 || h > math.MaxInt16/2 {
		return nil, fmt.Errorf("procgen: map size %dx%d exceeds coordinate range", w, h)
	}
	return hexmap.NewRectangular(0, hexmap.CubeScalar(w-1), 0, hexmap.CubeScalar(h-1)), nil
}
