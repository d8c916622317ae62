package api

import (
	"fmt"
	"io"

	"github.com/msimaging/bif6/pkg/bif6"
)

// File is an in-memory snapshot of a fully decoded BIF6 file. The decoder is
// forward-only and a session must not be shared, so the serve path decodes
// everything in one pass up front; the resulting Intervals are immutable and
// safe to serve concurrently.
type File struct {
	Path      string
	Header    bif6.Header
	Intervals []*bif6.Interval

	byID map[uint32]*bif6.Interval
}

// LoadFile opens path, decodes every interval and releases the file.
func LoadFile(path string) (*File, error) {
	r, err := bif6.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	f := &File{
		Path:   path,
		Header: r.Header(),
		byID:   make(map[uint32]*bif6.Interval),
	}
	for {
		iv, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		f.Intervals = append(f.Intervals, iv)
		// Ids are nominally unique; on a duplicate the first record wins.
		if _, ok := f.byID[iv.ID]; !ok {
			f.byID[iv.ID] = iv
		}
	}
	return f, nil
}

// Interval returns the interval with the given id, or nil.
func (f *File) Interval(id uint32) *bif6.Interval {
	return f.byID[id]
}
