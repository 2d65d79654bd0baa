package clean

// Config holds filtering thresholds.
type Config struct {
	// MinMove drops points closer than this (meters) to the last kept point.
	// Zero or negative disables the movement test.
	MinMove float64

	// HDOPMax drops points whose reported horizontal dilution of precision
	// exceeds this value. Points without an hdop reading always pass:
	// precision-unknown is not penalized.
	HDOPMax float64

	// DropUnsorted discards points flagged out-of-order instead of keeping
	// them for a later sort.
	DropUnsorted bool
}

// DefaultConfig returns the thresholds used when the caller does not
// override them.
func DefaultConfig() Config {
	return Config{
		MinMove: 1.25, // stationary GPS jitter is usually within a meter
		HDOPMax: 15,
	}
}

// Stats reports what the filter did so callers can surface it to users.
type Stats struct {
	Input           int `json:"input_points"`
	Kept            int `json:"kept_points"`
	DroppedMove     int `json:"dropped_min_move"`
	DroppedHDOP     int `json:"dropped_hdop"`
	DroppedUnsorted int `json:"dropped_unsorted"`
}
