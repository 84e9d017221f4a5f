package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/FitrahHaque/lzh/compressor/lz"
	"github.com/FitrahHaque/lzh/engine"
)

var Commands = [...]string{"compress", "decompress", "benchmark", "help"}

func main() {
	application := os.Args[0]
	if len(os.Args) == 1 {
		fmt.Println("Please provide commands")
		os.Exit(1)
	}
	commandArgs := findIntersection(
		[]string{
			"--compress",
			"--decompress",
			"--benchmark",
		},
		os.Args[1:],
	)
	if len(commandArgs) > 1 {
		fmt.Println("Specify a single command")
		os.Exit(1)
	}
	rest := removeArgs(os.Args[1:], commandArgs)

	command := Commands[0]
	if len(commandArgs) == 1 {
		command = strings.TrimPrefix(commandArgs[0], "--")
	} else if slices.Contains(os.Args[1:], "--help") {
		usage(application)
		return
	} else {
		fmt.Println("No command is selected. Compression by default")
	}

	var err error
	switch command {
	case "compress":
		err = runCompress(application, rest)
	case "decompress":
		err = runDecompress(application, rest)
	case "benchmark":
		err = runBenchmark(application, rest)
	}
	if err != nil {
		fail("%v", err)
	}
}

func usage(application string) {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", application)
	fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
	fmt.Fprintf(os.Stderr, "Run %s --<command> --help for the options of a command\n", application)
}

func runCompress(application string, args []string) error {
	compressFS := flag.NewFlagSet("compress", flag.ExitOnError)
	compressFS.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --compress [OPTIONS] <file(s)>\n", application)
		fmt.Fprintf(os.Stderr, "Flag:\n")
		compressFS.PrintDefaults()
	}
	algorithm := compressFS.String("algorithm", "lzh", fmt.Sprintf("Which algorithm(s) to use, comma separated and applied in order, choices include: \n\t%s", strings.Join(engine.Engines[:], ", ")))
	deleteAfterCompress := compressFS.Bool("delete", false, "Delete file after compression")
	outputFileExtension := compressFS.String("outfileext", "lzh", "File extension used for the result")
	chain := compressFS.Int("chain", lz.MaxChain, "lzh: candidates examined per position")
	quiet := compressFS.Bool("quiet", false, "Do not show a progress bar")
	compressFS.Parse(args)

	files, err := fileArgs(compressFS.Args(), "compression")
	if err != nil {
		return err
	}
	opts := engine.Options{MaxChain: *chain}
	if err := engine.CompressFiles(files, splitList(*algorithm), *outputFileExtension, opts, !*quiet); err != nil {
		return err
	}
	if *deleteAfterCompress {
		return deleteFiles(files)
	}
	return nil
}

func runDecompress(application string, args []string) error {
	decompressFS := flag.NewFlagSet("decompress", flag.ExitOnError)
	decompressFS.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --decompress [OPTIONS] <file(s)>\n", application)
		fmt.Fprintf(os.Stderr, "Flag:\n")
		decompressFS.PrintDefaults()
	}
	algorithm := decompressFS.String("algorithm", "lzh", "Algorithm(s) the files were compressed with, in compression order")
	deleteAfterDecompress := decompressFS.Bool("delete", false, "Delete file after decompression")
	inputFileExtension := decompressFS.String("outfileext", "lzh", "Extension to strip from compressed file names")
	strict := decompressFS.Bool("strict", false, "lzh: fail when the input ends early instead of writing a short file")
	decompressFS.Parse(args)

	files, err := fileArgs(decompressFS.Args(), "decompression")
	if err != nil {
		return err
	}
	opts := engine.Options{Strict: *strict}
	if err := engine.DecompressFiles(files, splitList(*algorithm), *inputFileExtension, opts); err != nil {
		return err
	}
	if *deleteAfterDecompress {
		return deleteFiles(files)
	}
	return nil
}

func runBenchmark(application string, args []string) error {
	benchmarkFS := flag.NewFlagSet("benchmark", flag.ExitOnError)
	benchmarkFS.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --benchmark [OPTIONS] <file(s)>\n", application)
		fmt.Fprintf(os.Stderr, "Flag:\n")
		benchmarkFS.PrintDefaults()
	}
	chartPath := benchmarkFS.String("chart", "", "Write an SVG bar chart of the ratios to this path")
	chain := benchmarkFS.Int("chain", lz.MaxChain, "lzh: candidates examined per position")
	benchmarkFS.Parse(args)

	files, err := fileArgs(benchmarkFS.Args(), "benchmark")
	if err != nil {
		return err
	}
	results, err := engine.RunBenchmark(files, engine.Options{MaxChain: *chain})
	if err != nil {
		return err
	}
	if err := engine.PrintResults(os.Stdout, results); err != nil {
		return err
	}
	if *chartPath != "" {
		if err := engine.RenderChart(*chartPath, results); err != nil {
			return err
		}
		color.Green("Chart written to %s", *chartPath)
	}
	return nil
}

func fileArgs(args []string, purpose string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no file provided for %s", purpose)
	}
	files := splitList(strings.Join(args, ","))
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("could not open the provided file %s", f)
		}
	}
	return files, nil
}

func fail(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// findIntersection returns the distinct commands present in argList, in the
// order they first appear.
func findIntersection(commandList, argList []string) []string {
	seen := make(map[string]bool, len(commandList))
	for _, c := range commandList {
		seen[c] = false
	}
	var out []string
	for _, arg := range argList {
		if found, ok := seen[arg]; ok && !found {
			seen[arg] = true
			out = append(out, arg)
		}
	}
	return out
}

func removeArgs(argList, remove []string) []string {
	var out []string
	for _, arg := range argList {
		if !slices.Contains(remove, arg) {
			out = append(out, arg)
		}
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func deleteFiles(files []string) error {
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return err
		}
	}
	return nil
}
