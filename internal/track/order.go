package track

import "sort"

// VerifySorted walks the sequence once and marks every point whose timestamp
// is earlier than the latest in-order timestamp seen so far. Marked points do
// not advance the tracker, so a single rogue fix far in the future does not
// condemn everything after it. Returns true iff no point was marked.
func VerifySorted(points []Point) bool {
	sorted := true
	var latest int64 // unix nanos of the latest in-order point
	first := true

	for i := range points {
		ts := points[i].Time.UnixNano()
		if !first && ts < latest {
			points[i].OutOfOrder = true
			sorted = false
			continue
		}
		latest = ts
		first = false
	}

	return sorted
}

// SortByTime returns a new sequence ordered by ascending timestamp. The sort
// is stable: points sharing a timestamp keep their original relative order.
// The input slice is left untouched.
func SortByTime(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})

	return out
}
