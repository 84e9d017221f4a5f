// Command lzh-decode restores a file compressed by lzh-encode.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/FitrahHaque/lzh/engine"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input> <output>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	if _, err := engine.DecompressFile(os.Args[1], os.Args[2], []string{"lzh"}, engine.Options{}); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
