package kernel

import (
	"errors"
	"fmt"

	"workforce/internal/pkg/errs"
	"workforce/internal/pkg/guard"

	h3 "github.com/uber/h3-go/v4"
)

// Valid WGS84 coordinate bounds.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// H3 resolution bounds and the resolution the marketplace indexes jobs at.
// Higher resolutions mean smaller cells and finer proximity grouping.
const (
	MinCellResolution     = 0
	MaxCellResolution     = 15
	DefaultCellResolution = 7
)

// ErrGeoPointIsNotConstructed is returned when validating a GeoPoint that was
// not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// ErrCellIDIsNotConstructed is returned when validating a CellID that was not
// created via GeoPoint.Cell or CellIDFromString.
var ErrCellIDIsNotConstructed = errs.NewValueIsRequiredError(
	"cell ID must be created via GeoPoint.Cell or CellIDFromString constructors")

// GeoPoint is an immutable value object holding a validated latitude and
// longitude. The zero value is invalid; use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(51.1, 71.4)
//	if err != nil {
//	    // out-of-range coordinate
//	}
//	cell, err := point.Cell(kernel.DefaultCellResolution)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from a latitude in [-90, 90] and a longitude
// in [-180, 180]. Out-of-range values fail with a ValueIsOutOfRangeError.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(lat), point.setLongitude(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p.lat == other.lat && p.lng == other.lng, nil
}

// Cell maps the point to its hierarchical spatial cell at the given
// resolution. The mapping is deterministic: two points yield the same CellID
// iff they fall within the same hexagonal partition at that resolution.
func (p GeoPoint) Cell(resolution int) (CellID, error) {
	if err := p.Validate(); err != nil {
		return CellID{}, err
	}
	if resolution < MinCellResolution || resolution > MaxCellResolution {
		return CellID{}, errs.NewValueIsOutOfRangeError(
			"resolution", resolution, MinCellResolution, MaxCellResolution)
	}

	cell, err := h3.LatLngToCell(h3.LatLng{Lat: p.lat, Lng: p.lng}, resolution)
	if err != nil {
		return CellID{}, errs.NewValueIsInvalidErrorWithCause("coordinates", err)
	}

	return CellID{cell: cell, guard: guard.NewConstructorGuard()}, nil
}

func (p *GeoPoint) setLatitude(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLongitude(lng float64) error {
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}
	p.lng = lng
	return nil
}

// CellID is an opaque identifier of a hierarchical spatial cell.
// Callers use it only for equality and as a lookup key; the canonical string
// form (H3 index in hexadecimal) is what gets persisted and travels over the
// wire. The zero value is invalid.
type CellID struct {
	cell  h3.Cell
	guard guard.ConstructorGuard
}

// CellIDFromString parses a CellID from its canonical string form, as stored
// in the jobs table or received from the transport layer.
func CellIDFromString(s string) (CellID, error) {
	cell := h3.Cell(h3.IndexFromString(s))
	if !cell.IsValid() {
		return CellID{}, errs.NewValueIsInvalidError("cellId")
	}
	return CellID{cell: cell, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the CellID was created via a constructor.
func (c CellID) Validate() error {
	return c.guard.Validate(ErrCellIDIsNotConstructed)
}

// String returns the canonical hexadecimal H3 index.
func (c CellID) String() string {
	return c.cell.String()
}

// Resolution returns the cell's hierarchical resolution.
func (c CellID) Resolution() int {
	return c.cell.Resolution()
}

// IsEqual reports whether two cell identifiers denote the same partition.
func (c CellID) IsEqual(other CellID) bool {
	return c.cell == other.cell
}
