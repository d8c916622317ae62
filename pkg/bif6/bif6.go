// Package bif6 decodes BIF6 files: a sequence of mass-spectrometry-imaging
// intervals, each pairing an m/z range with a 2D image of pixel intensities.
//
// The format is a fixed 12-byte header followed by back-to-back interval
// records with no padding, footer, checksum or compression. All integers and
// floats are little-endian. A Reader decodes records strictly front to back;
// there is no random access and no write path.
package bif6

import "encoding/binary"

const (
	// MagicBIF6 opens every BIF6 file ("\x00\x00BIF6").
	MagicBIF6 = "\x00\x00BIF6"

	// fileHeaderSize is the wire size of the fixed header:
	// 6-byte magic plus three little-endian u16 fields.
	fileHeaderSize = 12

	// recordHeaderSize covers the per-interval header:
	// u32 id plus three f32 m/z bounds.
	recordHeaderSize = 16

	// pixelSize is the wire size of one intensity value (u32).
	pixelSize = 4
)

// Header is the fixed file header, parsed exactly once at open time and
// immutable thereafter.
type Header struct {
	// IntervalCount is the number of interval records the file declares.
	// It is never cross-checked against the records actually present;
	// see Reader.Decoded.
	IntervalCount uint16

	// Width and Height are the pixel dimensions of every interval image
	// in the file.
	Width  uint16
	Height uint16
}

// RecordSize returns the wire size of one interval record under this header.
func (h Header) RecordSize() int {
	return recordHeaderSize + int(h.Width)*int(h.Height)*pixelSize
}

func decodeFileHeader(b []byte) (Header, bool) {
	if len(b) < fileHeaderSize || string(b[:len(MagicBIF6)]) != MagicBIF6 {
		return Header{}, false
	}
	return Header{
		IntervalCount: binary.LittleEndian.Uint16(b[6:8]),
		Width:         binary.LittleEndian.Uint16(b[8:10]),
		Height:        binary.LittleEndian.Uint16(b[10:12]),
	}, true
}
