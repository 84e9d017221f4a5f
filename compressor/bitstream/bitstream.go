// Package bitstream packs single bits and fixed-width unsigned integers into
// a byte stream, most significant bit first, and reads them back.
package bitstream

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// ErrNoMoreBits is returned by Reader once the underlying input is exhausted.
var ErrNoMoreBits = errors.New("bitstream: no more bits")

// Writer appends bits to an io.Writer. At most 7 bits are held back between
// calls; Flush pads them to a full byte with zeros.
type Writer struct {
	bw      *bitio.Writer
	written uint64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

func (w *Writer) WriteBit(bit bool) error {
	if err := w.bw.WriteBool(bit); err != nil {
		return err
	}
	w.written++
	return nil
}

// WriteBits writes the low width bits of value, highest of them first.
func (w *Writer) WriteBits(value uint64, width uint8) error {
	if width == 0 {
		return nil
	}
	if width > 64 {
		return errors.New("bitstream: cannot write more than 64 bits at once")
	}
	if width < 64 {
		value &= (1 << width) - 1
	}
	if err := w.bw.WriteBits(value, width); err != nil {
		return err
	}
	w.written += uint64(width)
	return nil
}

// Flush emits the pending partial byte, left-aligned and zero padded.
func (w *Writer) Flush() error {
	_, err := w.bw.Align()
	return err
}

// BitsWritten reports how many payload bits were written, padding excluded.
func (w *Writer) BitsWritten() uint64 {
	return w.written
}

// Reader pulls bits from an io.Reader, most significant bit of each byte first.
type Reader struct {
	br *bitio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

func (r *Reader) ReadBit() (bool, error) {
	bit, err := r.br.ReadBool()
	if err != nil {
		return false, exhausted(err)
	}
	return bit, nil
}

// ReadBits reads width bits and returns them as the low bits of the result.
func (r *Reader) ReadBits(width uint8) (uint64, error) {
	if width == 0 {
		return 0, nil
	}
	if width > 64 {
		return 0, errors.New("bitstream: cannot read more than 64 bits at once")
	}
	v, err := r.br.ReadBits(width)
	if err != nil {
		return 0, exhausted(err)
	}
	return v, nil
}

func exhausted(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrNoMoreBits
	}
	return err
}
