package geom

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"gatewheel/pkg/errors"
)

// RingGeometry describes one concentric annular band. Geometries are
// extracted once per ring type from the reference diagram and treated as
// read-only calibration constants for the rest of the run.
type RingGeometry struct {
	Center      Point   `toml:"center" json:"center"`
	InnerRadius float64 `toml:"inner_radius" json:"inner_radius"`
	OuterRadius float64 `toml:"outer_radius" json:"outer_radius"`
}

// BandWidth returns the radial thickness of the band.
func (r RingGeometry) BandWidth() float64 { return r.OuterRadius - r.InnerRadius }

// MidRadius returns the radius of the band's centerline.
func (r RingGeometry) MidRadius() float64 { return (r.InnerRadius + r.OuterRadius) / 2 }

// Validate checks that the band is well-formed.
func (r RingGeometry) Validate() error {
	if r.InnerRadius < 0 || r.OuterRadius <= r.InnerRadius {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"radii %.2f..%.2f do not form a band", r.InnerRadius, r.OuterRadius)
	}
	return nil
}

// SubBand splits the band into n equal radial sub-bands and returns
// sub-band i counted from the outer (volatile) boundary inward. This is
// the shared formula behind per-line detail bands: sub-index 0 always sits
// at the volatile edge, the last at the stable edge.
func (r RingGeometry) SubBand(i, n int) RingGeometry {
	step := r.BandWidth() / float64(n)
	outer := r.OuterRadius - float64(i)*step
	return RingGeometry{
		Center:      r.Center,
		InnerRadius: outer - step,
		OuterRadius: outer,
	}
}

// Calibration is the full set of geometric constants one run consumes:
// the canvas position offset plus one geometry per ring type. It is loaded
// once at run start and never mutated.
type Calibration struct {
	PositionOffset float64                 `toml:"position_offset"`
	Rings          map[string]RingGeometry `toml:"rings"`
}

// Ring returns the geometry for a named ring type.
func (c Calibration) Ring(name string) (RingGeometry, error) {
	g, ok := c.Rings[name]
	if !ok {
		known := make([]string, 0, len(c.Rings))
		for k := range c.Rings {
			known = append(known, k)
		}
		sort.Strings(known)
		return RingGeometry{}, errors.New(errors.ErrCodeInvalidRing,
			"no calibrated geometry for ring %q (have %v)", name, known)
	}
	return g, nil
}

// Validate checks every ring geometry in the calibration.
func (c Calibration) Validate() error {
	for name, g := range c.Rings {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("ring %s: %w", name, err)
		}
	}
	return nil
}

// LoadCalibration reads calibration constants from a TOML file, typically
// one produced by the calibrate command.
func LoadCalibration(path string) (Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Calibration{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "calibration %s", path)
	}
	var c Calibration
	if err := toml.Unmarshal(data, &c); err != nil {
		return Calibration{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Calibration{}, err
	}
	return c, nil
}

// SaveCalibration writes calibration constants as TOML.
func SaveCalibration(c Calibration, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
