package clean

import "github.com/planbiir/gsplit/internal/track"

// Filter runs a single left-to-right pass over the sequence and keeps the
// points that moved far enough and are precise enough. The returned sequence
// is an order-preserving subset of the input.
//
// The check order matters: the out-of-order drop runs first and never touches
// the distance cursor; the movement test runs before the precision test; and
// the cursor only ever advances to a fully accepted point, so a rejected
// point never becomes the reference for later distance comparisons.
func Filter(points []track.Point, cfg Config) ([]track.Point, Stats) {
	stats := Stats{Input: len(points)}
	out := make([]track.Point, 0, len(points))

	// Last accepted point; absent until the first acceptance, so the first
	// real point can never fail the movement test.
	var last track.Point
	haveLast := false

	for i := range points {
		pt := points[i]

		if cfg.DropUnsorted && pt.OutOfOrder {
			stats.DroppedUnsorted++
			continue
		}

		if haveLast && cfg.MinMove > 0 &&
			track.Distance(last.Lat, last.Lon, pt.Lat, pt.Lon) < cfg.MinMove {
			stats.DroppedMove++
			continue
		}

		if pt.HDOP != nil && *pt.HDOP > cfg.HDOPMax {
			stats.DroppedHDOP++
			continue
		}

		out = append(out, pt)
		last, haveLast = pt, true
	}

	stats.Kept = len(out)
	return out, stats
}
