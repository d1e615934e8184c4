package basemap

import(
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/skypies/geo"
)

// ReadGeoJSON takes a FeatureCollection. Polygons become land, linestrings become lines,
// points are ignored.
func ReadGeoJSON(data []byte) (*Basemap, error) {
	fc,err := geojson.UnmarshalFeatureCollection(data)
	if err != nil { return nil, fmt.Errorf("basemap: geojson: %v", err) }

	bm := New()
	for _,f := range fc.Features {
		if f.Geometry != nil {
			bm.addGeometry(f.Geometry)
		}
	}
	return bm,nil
}

// GeoJSON coords are [long,lat]
func toLatlongs(coords [][]float64) []geo.Latlong {
	ret := []geo.Latlong{}
	for _,c := range coords {
		if len(c) < 2 { continue }
		ret = append(ret, geo.Latlong{Lat:c[1], Long:c[0]})
	}
	return ret
}

func toPolygon(rings [][][]float64) Polygon {
	p := Polygon{}
	for _,r := range rings {
		if ring := toLatlongs(r); len(ring) >= 3 {
			p = append(p, Ring(ring))
		}
	}
	return p
}

func (bm *Basemap)addGeometry(g *geojson.Geometry) {
	switch g.Type {
	case geojson.GeometryPolygon:
		if p := toPolygon(g.Polygon); len(p) > 0 { bm.Land = append(bm.Land, p) }

	case geojson.GeometryMultiPolygon:
		for _,rings := range g.MultiPolygon {
			if p := toPolygon(rings); len(p) > 0 { bm.Land = append(bm.Land, p) }
		}

	case geojson.GeometryLineString:
		if l := toLatlongs(g.LineString); len(l) >= 2 { bm.Lines = append(bm.Lines, l) }

	case geojson.GeometryMultiLineString:
		for _,coords := range g.MultiLineString {
			if l := toLatlongs(coords); len(l) >= 2 { bm.Lines = append(bm.Lines, l) }
		}

	case geojson.GeometryCollection:
		for _,sub := range g.Geometries {
			if sub != nil { bm.addGeometry(sub) }
		}
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
