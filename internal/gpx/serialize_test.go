package gpx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planbiir/gsplit/internal/track"
)

func fptr(v float64) *float64 { return &v }

func TestSerialize(t *testing.T) {
	points := []track.Point{
		{
			Lat:       46.0,
			Lon:       7.0,
			Time:      time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			Elevation: fptr(1000),
			HDOP:      fptr(1.2),
		},
		{
			Lat:  46.001,
			Lon:  7.001,
			Time: time.Date(2025, 1, 1, 10, 0, 1, 0, time.UTC),
		},
	}

	data, n, err := Serialize("2025-01-01.gpx", points)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := string(data)
	assert.True(t, strings.HasPrefix(out,
		`<?xml version="1.0" encoding="UTF-8" standalone="no" ?>`+"\n"))
	assert.Contains(t, out, `<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="gsplit">`)
	assert.Contains(t, out, "<name>2025-01-01.gpx</name>")
	assert.Contains(t, out, `<trkpt lat="46" lon="7">`)
	assert.Contains(t, out, "<time>2025-01-01T10:00:00Z</time>")
	assert.Contains(t, out, "<ele>1000</ele>")
	assert.Contains(t, out, "<hdop>1.2</hdop>")
}

func TestSerializeOmitsAbsentOptionalFields(t *testing.T) {
	points := []track.Point{
		{Lat: 46.0, Lon: 7.0, Time: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	data, _, err := Serialize("01.gpx", points)
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, "<ele>")
	assert.NotContains(t, out, "<hdop>")
	assert.Contains(t, out, "<time>")
}

func TestSerializeRoundTrips(t *testing.T) {
	points := []track.Point{
		{Lat: 46.0, Lon: 7.0, Time: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), HDOP: fptr(2.5)},
		{Lat: 46.5, Lon: 7.5, Time: time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)},
	}

	data, _, err := Serialize("roundtrip.gpx", points)
	require.NoError(t, err)

	doc, err := ParseReader(strings.NewReader(string(data)))
	require.NoError(t, err)

	back, err := Flatten(doc)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, points[0].Lat, back[0].Lat)
	assert.Equal(t, points[0].Time, back[0].Time)
	require.NotNil(t, back[0].HDOP)
	assert.Equal(t, 2.5, *back[0].HDOP)
	assert.Nil(t, back[1].HDOP)
}

func TestSerializeSingleTrackSingleSegment(t *testing.T) {
	points := []track.Point{
		{Lat: 46.0, Lon: 7.0, Time: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	data, _, err := Serialize("01.gpx", points)
	require.NoError(t, err)

	out := string(data)
	assert.Equal(t, 1, strings.Count(out, "<trk>"))
	assert.Equal(t, 1, strings.Count(out, "<trkseg>"))
}
