package lzh

import (
	"bytes"
	"errors"
	"io"
)

// CompressionWriter collects everything written to it and emits one container
// to the underlying writer on Close. It does not compress incrementally.
type CompressionWriter struct {
	w      io.Writer
	opts   *CompressOptions
	input  bytes.Buffer
	closed bool
}

// NewWriter returns a CompressionWriter over w. Options nil means DefaultCompressOptions().
func NewWriter(w io.Writer, opts *CompressOptions) *CompressionWriter {
	return &CompressionWriter{w: w, opts: opts}
}

func (cw *CompressionWriter) Write(data []byte) (int, error) {
	if cw.closed {
		return 0, errors.New("lzh: write to closed CompressionWriter")
	}
	return cw.input.Write(data)
}

// Close compresses the collected input and writes the container. It does not
// close the underlying writer.
func (cw *CompressionWriter) Close() error {
	if cw.closed {
		return nil
	}
	cw.closed = true
	compressed, err := Compress(cw.input.Bytes(), cw.opts)
	if err != nil {
		return err
	}
	cw.input.Reset()
	_, err = cw.w.Write(compressed)
	return err
}

// NewReader reads a whole container from r and returns a reader over the
// decompressed bytes. Options nil means DefaultOptions().
//
// A strict truncated stream returns a reader over the recovered prefix
// together with ErrTruncated.
func NewReader(r io.Reader, opts *Options) (io.Reader, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	out, err := Decompress(compressed, opts)
	if err != nil && !errors.Is(err, ErrTruncated) {
		return nil, err
	}
	return bytes.NewReader(out), err
}
