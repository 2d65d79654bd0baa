package gpx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/planbiir/gsplit/internal/track"
)

// Output document header and attributes. Some consumers are picky about the
// standalone declaration, so the header is written verbatim instead of
// relying on xml.Header.
const (
	header    = `<?xml version="1.0" encoding="UTF-8" standalone="no" ?>` + "\n"
	Namespace = "http://www.topografix.com/GPX/1/1"
	Version   = "1.1"
	Creator   = "gsplit"
)

// Serialize renders a point sequence as a complete GPX document holding a
// single track with a single segment, named after the output file. It
// returns the document bytes and the number of points written; it never
// touches the filesystem.
func Serialize(name string, points []track.Point) ([]byte, int, error) {
	seg := Segment{Points: make([]TrackPoint, 0, len(points))}
	for i := range points {
		pt := &points[i]
		lat, lon := pt.Lat, pt.Lon
		seg.Points = append(seg.Points, TrackPoint{
			Lat:  &lat,
			Lon:  &lon,
			Time: pt.Time.Format(time.RFC3339),
			Ele:  pt.Elevation,
			HDOP: pt.HDOP,
		})
	}

	doc := GPX{
		XMLNS:   Namespace,
		Version: Version,
		Creator: Creator,
		Tracks:  []Track{{Name: name, Segments: []Segment{seg}}},
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return nil, 0, fmt.Errorf("failed to encode GPX: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), len(points), nil
}
