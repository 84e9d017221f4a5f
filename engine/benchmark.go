package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
)

var ErrRoundTrip = errors.New("decompressed output differs from the input")

// Result is one engine run over one file.
type Result struct {
	File           string
	Engine         string
	OriginalSize   int
	CompressedSize int
	CompressTime   time.Duration
	DecompressTime time.Duration
}

// Ratio is the compressed size as a percentage of the original size.
func (r Result) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.CompressedSize) / float64(r.OriginalSize) * 100
}

// RunBenchmark compresses every file with every engine and checks that each
// one decompresses back to the original bytes.
func RunBenchmark(files []string, opts Options) ([]Result, error) {
	var results []Result
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		fileResults, err := benchmarkContent(file, content, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, fileResults...)
	}
	return results, nil
}

func benchmarkContent(name string, content []byte, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(Engines))
	for _, algorithm := range Engines {
		algorithms := []string{algorithm}

		start := time.Now()
		compressed, err := Compress(content, algorithms, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		compressTime := time.Since(start)

		start = time.Now()
		restored, err := Decompress(compressed, algorithms, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		decompressTime := time.Since(start)

		if !bytes.Equal(restored, content) {
			return nil, fmt.Errorf("%s/%s: %w", name, algorithm, ErrRoundTrip)
		}
		results = append(results, Result{
			File:           name,
			Engine:         algorithm,
			OriginalSize:   len(content),
			CompressedSize: len(compressed),
			CompressTime:   compressTime,
			DecompressTime: decompressTime,
		})
	}
	return results, nil
}

func PrintResults(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tENGINE\tORIGINAL\tCOMPRESSED\tRATIO\tCOMPRESS\tDECOMPRESS")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.2f%%\t%v\t%v\n",
			r.File, r.Engine, r.OriginalSize, r.CompressedSize, r.Ratio(),
			r.CompressTime.Round(time.Microsecond), r.DecompressTime.Round(time.Microsecond))
	}
	return tw.Flush()
}
