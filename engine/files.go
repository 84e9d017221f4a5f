package engine

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Report describes one processed file.
type Report struct {
	Input      string
	Output     string
	InputSize  int
	OutputSize int
	Duration   time.Duration
}

// Ratio is the output size as a percentage of the input size.
func (r Report) Ratio() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.OutputSize) / float64(r.InputSize) * 100
}

// CompressFile reads inPath whole, compresses it and writes outPath.
func CompressFile(inPath, outPath string, algorithms []string, opts Options) (Report, error) {
	return transformFile(inPath, outPath, func(content []byte) ([]byte, error) {
		return Compress(content, algorithms, opts)
	})
}

// DecompressFile reverses CompressFile.
func DecompressFile(inPath, outPath string, algorithms []string, opts Options) (Report, error) {
	return transformFile(inPath, outPath, func(content []byte) ([]byte, error) {
		return Decompress(content, algorithms, opts)
	})
}

func transformFile(inPath, outPath string, transform func([]byte) ([]byte, error)) (Report, error) {
	fileContent, err := os.ReadFile(inPath)
	if err != nil {
		return Report{}, err
	}
	start := time.Now()
	result, err := transform(fileContent)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", inPath, err)
	}
	elapsed := time.Since(start)
	if err = os.WriteFile(outPath, result, 0644); err != nil {
		return Report{}, err
	}
	return Report{
		Input:      inPath,
		Output:     outPath,
		InputSize:  len(fileContent),
		OutputSize: len(result),
		Duration:   elapsed,
	}, nil
}

// CompressedName appends the extension to path.
func CompressedName(path, fileExtension string) string {
	return path + "." + strings.TrimPrefix(fileExtension, ".")
}

// DecompressedName strips the extension CompressedName added, or appends
// ".out" when path does not carry it.
func DecompressedName(path, fileExtension string) string {
	suffix := "." + strings.TrimPrefix(fileExtension, ".")
	if trimmed, ok := strings.CutSuffix(path, suffix); ok && trimmed != "" {
		return trimmed
	}
	return path + ".out"
}

func CompressFiles(files []string, algorithms []string, fileExtension string, opts Options, showProgress bool) error {
	for _, file := range files {
		fmt.Printf("Compressing %s...\n", file)
		progress, done := newProgress(file, showProgress)
		fileOpts := opts
		if progress != nil {
			fileOpts.Progress = progress
		}
		report, err := CompressFile(file, CompressedName(file, fileExtension), algorithms, fileOpts)
		done()
		if err != nil {
			return err
		}
		printReport(report)
	}
	return nil
}

func DecompressFiles(files []string, algorithms []string, fileExtension string, opts Options) error {
	for _, file := range files {
		fmt.Printf("Decompressing %s...\n", file)
		report, err := DecompressFile(file, DecompressedName(file, fileExtension), algorithms, opts)
		if err != nil {
			return err
		}
		printReport(report)
	}
	return nil
}

func printReport(r Report) {
	fmt.Printf("Original size (in bytes): %v\n", r.InputSize)
	fmt.Printf("Result size (in bytes): %v\n", r.OutputSize)
	fmt.Printf("Ratio: %.2f%%\n", r.Ratio())
	color.Green("Wrote %s in %v", r.Output, r.Duration.Round(time.Millisecond))
}
