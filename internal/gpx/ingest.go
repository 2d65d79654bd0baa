package gpx

import (
	"errors"
	"fmt"
	"time"

	"github.com/planbiir/gsplit/internal/track"
)

// MalformedPointError reports a track point that is missing a mandatory
// field or carries an unparsable value. Ingestion fails hard on the first
// such point: silently dropping it could hide systematic corruption.
type MalformedPointError struct {
	Doc     int
	Track   int
	Segment int
	Point   int
	Reason  string
}

func (e *MalformedPointError) Error() string {
	return fmt.Sprintf("malformed point (doc %d, trk %d, seg %d, pt %d): %s",
		e.Doc, e.Track, e.Segment, e.Point, e.Reason)
}

// Flatten converts one or more parsed GPX documents into a single flat point
// sequence, preserving document order, then track order, then segment order,
// then point order. No sorting, filtering, or coordinate range checks happen
// here; timestamps are parsed and validated, everything else is copied.
func Flatten(docs ...*GPX) ([]track.Point, error) {
	var points []track.Point

	for d, doc := range docs {
		for t, trk := range doc.Tracks {
			for s, seg := range trk.Segments {
				for p, raw := range seg.Points {
					pt, err := convertPoint(raw)
					if err != nil {
						return nil, &MalformedPointError{
							Doc: d, Track: t, Segment: s, Point: p,
							Reason: err.Error(),
						}
					}
					points = append(points, pt)
				}
			}
		}
	}

	return points, nil
}

func convertPoint(raw TrackPoint) (track.Point, error) {
	if raw.Lat == nil {
		return track.Point{}, errors.New("missing lat attribute")
	}
	if raw.Lon == nil {
		return track.Point{}, errors.New("missing lon attribute")
	}
	if raw.Time == "" {
		return track.Point{}, errors.New("missing time element")
	}

	ts, err := time.Parse(time.RFC3339, raw.Time)
	if err != nil {
		return track.Point{}, fmt.Errorf("invalid time %q: %w", raw.Time, err)
	}

	return track.Point{
		Lat:       *raw.Lat,
		Lon:       *raw.Lon,
		Time:      ts,
		Elevation: raw.Ele,
		HDOP:      raw.HDOP,
	}, nil
}
