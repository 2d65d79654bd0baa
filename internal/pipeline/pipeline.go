package pipeline

import (
	"math"

	"github.com/planbiir/gsplit/internal/clean"
	"github.com/planbiir/gsplit/internal/config"
	"github.com/planbiir/gsplit/internal/split"
	"github.com/planbiir/gsplit/internal/track"
)

// Result carries everything a run produced: both split result sets, the
// filter statistics, and whether the input was already in order.
type Result struct {
	// Sorted reports whether the ingested sequence was already in
	// chronological order.
	Sorted bool

	Stats clean.Stats

	// NoPoints is set when nothing survived filtering; neither splitter ran
	// and there is nothing to write. This is a normal outcome, not an error.
	NoPoints bool

	ByDay  []split.OutputUnit
	BySize []split.OutputUnit
}

// Run drives the core pipeline over an ingested point sequence:
// order verification, sorting or dropping of out-of-order points, filtering,
// and both splits. Both splitters consume the same filtered sequence; the
// size split is not a further split of the day output.
func Run(points []track.Point, cfg config.Config) (Result, error) {
	res := Result{Sorted: track.VerifySorted(points)}

	if !res.Sorted && !cfg.DropUnsorted {
		points = track.SortByTime(points)
	}

	switch {
	case cfg.Filter:
		points, res.Stats = clean.Filter(points, clean.Config{
			MinMove:      cfg.MinMove,
			HDOPMax:      cfg.HDOPMax,
			DropUnsorted: cfg.DropUnsorted,
		})
	case cfg.DropUnsorted && !res.Sorted:
		// Filtering is off but the drop-unsorted choice still applies: run
		// the filter with the movement and precision tests disabled.
		points, res.Stats = clean.Filter(points, clean.Config{
			HDOPMax:      math.Inf(1),
			DropUnsorted: true,
		})
	default:
		res.Stats = clean.Stats{Input: len(points), Kept: len(points)}
	}

	if len(points) == 0 {
		res.NoPoints = true
		return res, nil
	}

	bySize, err := split.BySize(points, cfg.MaxPoints)
	if err != nil {
		return res, err
	}
	byDay, err := split.ByDay(points, cfg.TZOffset)
	if err != nil {
		return res, err
	}

	res.BySize = bySize
	res.ByDay = byDay
	return res, nil
}
