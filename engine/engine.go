package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/FitrahHaque/lzh/compressor/lzh"
)

var Engines = [...]string{
	"lzh",
	"flate",
	"gzip",
	"zstd",
}

var ErrUnknownEngine = errors.New("unknown compression engine")

// Options are shared by every engine; each one reads the fields it knows.
type Options struct {
	MaxChain int                   // lzh search depth, 0 for the default.
	Strict   bool                  // lzh: fail on truncated input.
	Progress func(done, total int) // lzh match search progress.
}

type codec struct {
	newWriter func(w io.Writer, opts Options) (io.WriteCloser, error)
	newReader func(r io.Reader, opts Options) (io.ReadCloser, error)
}

var codecs = map[string]codec{
	"lzh": {
		newWriter: func(w io.Writer, opts Options) (io.WriteCloser, error) {
			return lzh.NewWriter(w, &lzh.CompressOptions{
				MaxChain: opts.MaxChain,
				Progress: opts.Progress,
			}), nil
		},
		newReader: func(r io.Reader, opts Options) (io.ReadCloser, error) {
			dr, err := lzh.NewReader(r, &lzh.Options{Strict: opts.Strict})
			if err != nil {
				return nil, err
			}
			return io.NopCloser(dr), nil
		},
	},
	"flate": {
		newWriter: func(w io.Writer, _ Options) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.BestCompression)
		},
		newReader: func(r io.Reader, _ Options) (io.ReadCloser, error) {
			return flate.NewReader(r), nil
		},
	},
	"gzip": {
		newWriter: func(w io.Writer, _ Options) (io.WriteCloser, error) {
			return gzip.NewWriterLevel(w, gzip.BestCompression)
		},
		newReader: func(r io.Reader, _ Options) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		},
	},
	"zstd": {
		newWriter: func(w io.Writer, _ Options) (io.WriteCloser, error) {
			return zstd.NewWriter(w,
				zstd.WithEncoderConcurrency(1),
				zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			)
		},
		newReader: func(r io.Reader, _ Options) (io.ReadCloser, error) {
			dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}
			return dec.IOReadCloser(), nil
		},
	},
}

func lookup(algorithm string) (codec, error) {
	c, ok := codecs[algorithm]
	if !ok {
		return codec{}, fmt.Errorf("%w %q, choices are %v", ErrUnknownEngine, algorithm, Engines)
	}
	return c, nil
}

type compressor struct {
	compressionEngine string
	content           []byte
}

func (c *compressor) write(content []byte, opts Options) (int, error) {
	cd, err := lookup(c.compressionEngine)
	if err != nil {
		return 0, err
	}
	var b bytes.Buffer
	w, err := cd.newWriter(&b, opts)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(content); err != nil {
		w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	c.content = b.Bytes()
	return len(c.content), nil
}

func (c *compressor) read(content []byte, opts Options) (int, error) {
	cd, err := lookup(c.compressionEngine)
	if err != nil {
		return 0, err
	}
	r, err := cd.newReader(bytes.NewReader(content), opts)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	if c.content, err = io.ReadAll(r); err != nil {
		return 0, err
	}
	return len(c.content), nil
}

// Compress runs content through each algorithm in order.
func Compress(content []byte, algorithms []string, opts Options) ([]byte, error) {
	for _, algorithm := range algorithms {
		file := compressor{
			compressionEngine: algorithm,
		}
		if _, err := file.write(content, opts); err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		content = file.content
	}
	return content, nil
}

// Decompress undoes Compress given the same algorithm list.
func Decompress(content []byte, algorithms []string, opts Options) ([]byte, error) {
	reversed := slices.Clone(algorithms)
	slices.Reverse(reversed)
	for _, algorithm := range reversed {
		file := compressor{
			compressionEngine: algorithm,
		}
		if _, err := file.read(content, opts); err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		content = file.content
	}
	return content, nil
}
