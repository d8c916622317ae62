package bif6

import "gonum.org/v1/gonum/stat"

// Stats summarises the pixel intensities of one interval image.
type Stats struct {
	Min    uint32
	Max    uint32
	Mean   float64
	StdDev float64
	Total  uint64
}

// Stats computes intensity summary figures over the whole image. The zero
// Stats value is returned for an empty image.
func (iv *Interval) Stats() Stats {
	w, h := iv.Image.Width(), iv.Image.Height()
	if w == 0 || h == 0 {
		return Stats{}
	}

	vals := make([]float64, 0, w*h)
	s := Stats{Min: iv.Image[0][0]}
	for _, col := range iv.Image {
		for _, p := range col {
			if p < s.Min {
				s.Min = p
			}
			if p > s.Max {
				s.Max = p
			}
			s.Total += uint64(p)
			vals = append(vals, float64(p))
		}
	}

	s.Mean = stat.Mean(vals, nil)
	if len(vals) > 1 {
		s.StdDev = stat.StdDev(vals, nil)
	}
	return s
}
