// SPDX-License-Identifier: MIT

package render

import (
	"github.com/katalvlaran/chartpath/chart"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSONRenderer collects drawn links as LineString features and labelled
// positions as Point features. Each position is emitted once.
type GeoJSONRenderer struct {
	fc       *geojson.FeatureCollection
	labelled map[*chart.Position]struct{}
}

// NewGeoJSONRenderer returns an empty GeoJSONRenderer.
func NewGeoJSONRenderer() *GeoJSONRenderer {
	return &GeoJSONRenderer{
		fc:       geojson.NewFeatureCollection(),
		labelled: make(map[*chart.Position]struct{}),
	}
}

// DrawLink implements Renderer.
func (g *GeoJSONRenderer) DrawLink(l *chart.Link) error {
	a, b := l.Endpoints()
	f := geojson.NewFeature(orb.LineString{a.Point(), b.Point()})
	f.Properties["from"] = a.Name()
	f.Properties["to"] = b.Name()
	f.Properties["cost"] = l.Cost()
	g.fc.Append(f)
	return nil
}

// LabelPosition implements Renderer.
func (g *GeoJSONRenderer) LabelPosition(p *chart.Position) error {
	if _, ok := g.labelled[p]; ok {
		return nil
	}
	g.labelled[p] = struct{}{}
	f := geojson.NewFeature(p.Point())
	f.Properties["name"] = p.Name()
	g.fc.Append(f)
	return nil
}

// FeatureCollection returns the collected features.
func (g *GeoJSONRenderer) FeatureCollection() *geojson.FeatureCollection { return g.fc }

// MarshalJSON implements json.Marshaler.
func (g *GeoJSONRenderer) MarshalJSON() ([]byte, error) { return g.fc.MarshalJSON() }
