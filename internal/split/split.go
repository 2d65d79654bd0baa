package split

import (
	"errors"
	"fmt"
	"time"

	"github.com/planbiir/gsplit/internal/track"
)

// ErrEmptyInput is returned when the day splitter is handed zero points;
// there is no first point to establish the day marker from. Callers are
// expected to take the "no points remain" exit before splitting.
var ErrEmptyInput = errors.New("cannot split an empty point sequence")

// InvalidConfigError reports a non-positive maximum points per file.
type InvalidConfigError struct {
	MaxPoints int
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("max points per file must be positive, got %d", e.MaxPoints)
}

// OutputUnit is one output file's worth of points plus its derived name
// (a YYYY-MM-DD day string or a zero-padded sequence number), prior to
// serialization.
type OutputUnit struct {
	Name   string
	Points []track.Point
}

// Filename derives the destination file name, with an optional prefix.
func (u OutputUnit) Filename(prefix string) string {
	if prefix != "" {
		return prefix + "-" + u.Name + ".gpx"
	}
	return u.Name + ".gpx"
}

// ByDay partitions a time-ordered sequence into contiguous runs that share
// the same calendar day after shifting each UTC timestamp by offsetHours.
// Because the input is ordered this is a single pass: whenever a point's
// shifted day differs from the current marker the accumulated run is
// flushed, and the final run is flushed after the loop.
func ByDay(points []track.Point, offsetHours int) ([]OutputUnit, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	var units []OutputUnit
	day := dayString(points[0].Time, offsetHours)
	start := 0

	for i := 1; i < len(points); i++ {
		d := dayString(points[i].Time, offsetHours)
		if d == day {
			continue
		}
		units = append(units, OutputUnit{Name: day, Points: points[start:i]})
		day = d
		start = i
	}

	return append(units, OutputUnit{Name: day, Points: points[start:]}), nil
}

// BySize partitions a sequence into runs of at most maxPoints points,
// numbered from 1 and zero-padded to at least two digits. Zero input yields
// zero units.
func BySize(points []track.Point, maxPoints int) ([]OutputUnit, error) {
	if maxPoints <= 0 {
		return nil, &InvalidConfigError{MaxPoints: maxPoints}
	}

	var units []OutputUnit
	for start, n := 0, 1; start < len(points); n++ {
		end := min(start+maxPoints, len(points))
		units = append(units, OutputUnit{Name: fmt.Sprintf("%02d", n), Points: points[start:end]})
		start = end
	}

	return units, nil
}

func dayString(ts time.Time, offsetHours int) string {
	return ts.UTC().Add(time.Duration(offsetHours) * time.Hour).Format("2006-01-02")
}
