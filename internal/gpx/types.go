package gpx

import "encoding/xml"

// GPX mirrors the subset of the GPX 1.1 schema this tool reads and writes:
// tracks, segments, and track points with time/ele/hdop children. Waypoints
// and routes are not decoded.
type GPX struct {
	XMLName xml.Name `xml:"gpx"`
	XMLNS   string   `xml:"xmlns,attr,omitempty"`
	Version string   `xml:"version,attr,omitempty"`
	Creator string   `xml:"creator,attr,omitempty"`

	Tracks []Track `xml:"trk"`
}

// Track represents one <trk> with its segments.
type Track struct {
	Name     string    `xml:"name,omitempty"`
	Segments []Segment `xml:"trkseg"`
}

// Segment represents one <trkseg>.
type Segment struct {
	Points []TrackPoint `xml:"trkpt"`
}

// TrackPoint is the raw decoded form of a <trkpt>. Lat and Lon are pointers
// so a missing attribute is distinguishable from a recorded 0.0; Time stays
// a string here and is parsed and validated at the ingestion boundary.
type TrackPoint struct {
	Lat  *float64 `xml:"lat,attr"`
	Lon  *float64 `xml:"lon,attr"`
	Time string   `xml:"time,omitempty"`
	Ele  *float64 `xml:"ele,omitempty"`
	HDOP *float64 `xml:"hdop,omitempty"`
}
