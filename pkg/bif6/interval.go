package bif6

import "encoding/binary"

// Image holds the pixel intensities of one interval with shape
// (width, height): the first index is x, the second y. On the wire the
// payload is row-major (height, width); decoding transposes it, so the
// logical image[x][y] is the physical pixel at linear index y*width + x.
// The transpose is part of the format contract, not a convenience.
type Image [][]uint32

// Width returns the number of columns (x extent).
func (im Image) Width() int { return len(im) }

// Height returns the number of rows (y extent).
func (im Image) Height() int {
	if len(im) == 0 {
		return 0
	}
	return len(im[0])
}

// At returns the intensity at logical coordinates (x, y).
func (im Image) At(x, y int) uint32 { return im[x][y] }

// Interval is one decoded BIF6 record. Values are passed through from the
// wire as-is: ids are nominally unique but not validated, and no ordering of
// the m/z bounds is enforced. An Interval is built fresh per decode step,
// retains no tie to its Reader, and is safe to share across goroutines.
type Interval struct {
	// ID identifies the interval within its file.
	ID uint32

	// MZLower, MZMiddle and MZUpper are the bounds and midpoint of the
	// interval's m/z range.
	MZLower  float32
	MZMiddle float32
	MZUpper  float32

	// Image is the decoded intensity image, shape (width, height).
	Image Image
}

// IsTICImage reports whether this interval is the total-ion-count image.
// By convention the first interval in a BIF6 file carries id 0 and holds
// the TIC summary.
func (iv *Interval) IsTICImage() bool { return iv.ID == 0 }

// decodeImage transposes a physical row-major (height, width) payload into
// the logical (width, height) image.
func decodeImage(payload []byte, width, height int) Image {
	img := make(Image, width)
	for x := range img {
		col := make([]uint32, height)
		for y := range col {
			off := (y*width + x) * pixelSize
			col[y] = binary.LittleEndian.Uint32(payload[off : off+pixelSize])
		}
		img[x] = col
	}
	return img
}
