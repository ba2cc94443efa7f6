package model

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/paulmach/orb/geojson"
)

// SRID of every stored geometry (WGS 84).
const SRID = 4326

// Geometry is stored in a PostGIS geometry column as EWKB and exchanged with clients as GeoJSON.
type Geometry struct {
	orb.Geometry
}

// ParseGeometry parses a GeoJSON geometry object. Geometries are 2D: positions need exactly two
// coordinates. Line strings need two positions and polygon rings four with the last equal to the
// first.
func ParseGeometry(data []byte) (Geometry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Geometry{}, fmt.Errorf("not a GeoJSON object: %v", err)
	}
	if raw == nil {
		return Geometry{}, errors.New("geometry is null")
	}

	if err := validateGeoJSON(raw); err != nil {
		return Geometry{}, err
	}

	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return Geometry{}, err
	}

	return Geometry{g.Geometry()}, nil
}

func (g Geometry) MarshalJSON() ([]byte, error) {
	if g.Geometry == nil {
		return []byte("null"), nil
	}
	return json.Marshal(geojson.NewGeometry(g.Geometry))
}

func (g *Geometry) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		g.Geometry = nil
		return nil
	}

	parsed, err := ParseGeometry(data)
	if err != nil {
		return err
	}

	*g = parsed
	return nil
}

func (g Geometry) Value() (driver.Value, error) {
	if g.Geometry == nil {
		return nil, nil
	}

	data, err := ewkb.Marshal(g.Geometry, SRID)
	if err != nil {
		return nil, fmt.Errorf("failed to encode geometry: %v", err)
	}

	return hex.EncodeToString(data), nil
}

// Scan accepts EWKB as raw bytes or hex encoded, which is how PostGIS returns geometry columns in
// text format.
func (g *Geometry) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		g.Geometry = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Geometry", value)
	}

	if isHex(data) {
		decoded, err := hex.DecodeString(string(data))
		if err != nil {
			return fmt.Errorf("failed to decode hex geometry: %v", err)
		}
		data = decoded
	}

	geometry, _, err := ewkb.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("failed to decode geometry: %v", err)
	}

	g.Geometry = geometry
	return nil
}

func isHex(data []byte) bool {
	if len(data) == 0 || len(data)%2 != 0 {
		return false
	}
	for _, b := range data {
		if !('0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F') {
			return false
		}
	}
	return true
}

func validateGeoJSON(raw map[string]any) error {
	kind, _ := raw["type"].(string)
	if kind == "GeometryCollection" {
		geometries, err := list(raw["geometries"], "geometries", 1)
		if err != nil {
			return err
		}
		for i, g := range geometries {
			m, ok := g.(map[string]any)
			if !ok {
				return fmt.Errorf("geometries[%d] is not an object", i)
			}
			if err := validateGeoJSON(m); err != nil {
				return fmt.Errorf("geometries[%d]: %w", i, err)
			}
		}
		return nil
	}

	coordinates, ok := raw["coordinates"]
	if !ok {
		return fmt.Errorf("%q geometry without coordinates", kind)
	}

	switch kind {
	case "Point":
		return position(coordinates)
	case "MultiPoint":
		return positions(coordinates, 1)
	case "LineString":
		return positions(coordinates, 2)
	case "MultiLineString":
		lines, err := list(coordinates, "line strings", 1)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if err := positions(l, 2); err != nil {
				return err
			}
		}
		return nil
	case "Polygon":
		return polygon(coordinates)
	case "MultiPolygon":
		polygons, err := list(coordinates, "polygons", 1)
		if err != nil {
			return err
		}
		for _, p := range polygons {
			if err := polygon(p); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("unsupported geometry type %q", kind)
}

func list(v any, what string, minimum int) ([]any, error) {
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array", what)
	}
	if len(l) < minimum {
		return nil, fmt.Errorf("expected at least %d %s, got %d", minimum, what, len(l))
	}
	return l, nil
}

func position(v any) error {
	p, ok := v.([]any)
	if !ok || len(p) != 2 {
		return fmt.Errorf("position must be an array of 2 numbers, got %v", v)
	}
	for _, c := range p {
		if _, ok := c.(float64); !ok {
			return fmt.Errorf("position must be an array of 2 numbers, got %v", v)
		}
	}
	return nil
}

func positions(v any, minimum int) error {
	l, err := list(v, "positions", minimum)
	if err != nil {
		return err
	}
	for _, p := range l {
		if err := position(p); err != nil {
			return err
		}
	}
	return nil
}

func polygon(v any) error {
	rings, err := list(v, "rings", 1)
	if err != nil {
		return err
	}
	for _, r := range rings {
		if err := positions(r, 4); err != nil {
			return err
		}
		points := r.([]any)
		first, last := points[0].([]any), points[len(points)-1].([]any)
		if first[0] != last[0] || first[1] != last[1] {
			return errors.New("polygon ring is not closed")
		}
	}
	return nil
}
