package api

// FileInfo describes the decoded file as a whole. DeclaredIntervals comes
// from the header and may exceed DecodedIntervals for files whose trailing
// records are missing; the decoder treats that as a clean end of stream.
type FileInfo struct {
	Path              string `json:"path"`
	DeclaredIntervals uint16 `json:"declared_intervals"`
	DecodedIntervals  int    `json:"decoded_intervals"`
	Width             uint16 `json:"width"`
	Height            uint16 `json:"height"`
}

// IntervalInfo is the listing view of one interval.
type IntervalInfo struct {
	ID       uint32  `json:"id"`
	MZLower  float32 `json:"mz_lower"`
	MZMiddle float32 `json:"mz_middle"`
	MZUpper  float32 `json:"mz_upper"`
	TIC      bool    `json:"tic"`
}

// IntervalStats mirrors bif6.Stats for the wire.
type IntervalStats struct {
	Min    uint32  `json:"min"`
	Max    uint32  `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Total  uint64  `json:"total"`
}

// IntervalDetail is the single-interval view.
type IntervalDetail struct {
	IntervalInfo
	Stats IntervalStats `json:"stats"`
}

// IntervalImage carries the full pixel array, shape (width, height):
// pixels[x][y] is the intensity at column x, row y.
type IntervalImage struct {
	ID     uint32     `json:"id"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Pixels [][]uint32 `json:"pixels"`
}

// ResponseError is the error envelope body.
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
