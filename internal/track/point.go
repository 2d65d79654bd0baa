package track

import "time"

// Point is the canonical in-memory track point every pipeline stage works on.
// Elevation and HDOP are pointers because absence is meaningful: a point
// without an <hdop> child is not the same as a point with hdop 0.
type Point struct {
	Lat  float64
	Lon  float64
	Time time.Time

	Elevation *float64
	HDOP      *float64

	// OutOfOrder is set by VerifySorted when the point's timestamp runs
	// backwards relative to the points before it. No other stage writes it.
	OutOfOrder bool
}
