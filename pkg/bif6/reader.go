package bif6

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// Reader decodes one BIF6 file front to back. A Reader owns its byte source
// for the whole session: the source is released automatically when the
// sequence ends (cleanly or with a fatal decode error) and on Close. The
// read cursor is session-local mutable state, so a Reader must not be used
// from multiple goroutines; decoded Intervals carry no such restriction.
type Reader struct {
	path   string
	header Header

	src    io.Reader
	closer io.Closer // owned file handle, nil for caller-owned streams
	mmap   []byte    // non-nil when the file is memory-mapped

	record  []byte // scratch buffer, one full record
	decoded int
	err     error // terminal condition: io.EOF or a fatal decode error
	closed  bool
}

// Open opens and validates a BIF6 file. The file is memory-mapped read-only
// where the platform allows it, with a plain sequential-read fallback; either
// way decoding is strictly forward-only. Open fails with ErrTruncatedHeader
// if the file is shorter than the fixed header, and with ErrBadMagic if the
// magic bytes mismatch.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	// Prefer mmap where available; the decode loop is identical either way.
	if size := st.Size(); size > 0 && size <= int64(int(^uint(0)>>1)) {
		if data, merr := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED); merr == nil {
			_ = f.Close()
			r, err := NewReader(bytes.NewReader(data))
			if err != nil {
				_ = unix.Munmap(data)
				return nil, err
			}
			r.path = path
			r.mmap = data
			return r, nil
		}
	}

	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.path = path
	r.closer = f
	return r, nil
}

// NewReader wraps an already-open byte stream. The stream is consumed
// sequentially and never seeked. The header is read and validated before
// NewReader returns; on failure nothing past the header bytes has been
// consumed. The caller keeps ownership of closing src unless the stream is
// also an io.Closer handed over via Open.
func NewReader(src io.Reader) (*Reader, error) {
	r := &Reader{src: src}
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) readHeader() error {
	var buf [fileHeaderSize]byte
	n, err := io.ReadFull(r.src, buf[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedHeader, n, fileHeaderSize)
	}
	if err != nil {
		return err
	}
	hdr, ok := decodeFileHeader(buf[:])
	if !ok {
		return fmt.Errorf("%w: % x", ErrBadMagic, buf[:len(MagicBIF6)])
	}
	r.header = hdr
	return nil
}

// Header returns the parsed file header.
func (r *Reader) Header() Header { return r.header }

// IntervalCount returns the header's declared record count. The actual
// stream may hold fewer records; the sequence still terminates cleanly in
// that case (see Decoded).
func (r *Reader) IntervalCount() uint16 { return r.header.IntervalCount }

// ImageSize returns the header-declared pixel dimensions, fixed for the
// whole file.
func (r *Reader) ImageSize() (width, height uint16) {
	return r.header.Width, r.header.Height
}

// Decoded returns how many intervals have been produced so far. Comparing it
// with IntervalCount after exhaustion lets strict callers detect files whose
// declared count diverges from the records present.
func (r *Reader) Decoded() int { return r.decoded }

// Path returns the file path for readers created with Open, "" otherwise.
func (r *Reader) Path() string { return r.path }

// Next decodes and returns the next interval.
//
// A clean end of stream returns io.EOF and releases the byte source; this is
// the normal termination path regardless of the declared interval count. A
// record that starts but cannot complete fails with ErrTruncatedInterval,
// which is fatal for the session and also releases the source. After any
// terminal condition every further call returns that same condition, and
// after Close it returns ErrClosed.
func (r *Reader) Next() (*Interval, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if r.err != nil {
		return nil, r.err
	}

	size := r.header.RecordSize()
	if r.record == nil {
		r.record = make([]byte, size)
	}

	n, err := io.ReadFull(r.src, r.record)
	switch {
	case err == io.EOF:
		r.err = io.EOF
		_ = r.release()
		return nil, io.EOF
	case err == io.ErrUnexpectedEOF:
		r.err = fmt.Errorf("%w: record %d: got %d of %d bytes",
			ErrTruncatedInterval, r.decoded, n, size)
		_ = r.release()
		return nil, r.err
	case err != nil:
		r.err = err
		_ = r.release()
		return nil, err
	}

	iv := &Interval{
		ID:       binary.LittleEndian.Uint32(r.record[0:4]),
		MZLower:  math.Float32frombits(binary.LittleEndian.Uint32(r.record[4:8])),
		MZMiddle: math.Float32frombits(binary.LittleEndian.Uint32(r.record[8:12])),
		MZUpper:  math.Float32frombits(binary.LittleEndian.Uint32(r.record[12:16])),
		Image:    decodeImage(r.record[recordHeaderSize:], int(r.header.Width), int(r.header.Height)),
	}
	r.decoded++
	return iv, nil
}

// Close releases the underlying byte source. Close is idempotent: closing an
// already-closed or already-exhausted reader is a no-op. After Close, Next
// fails with ErrClosed.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.release()
}

func (r *Reader) release() error {
	var err error
	if r.mmap != nil {
		err = unix.Munmap(r.mmap)
		r.mmap = nil
	}
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
		r.closer = nil
	}
	r.src = nil
	return err
}
