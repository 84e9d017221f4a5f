package engine

import (
	"os"
	"path/filepath"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
)

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newProgress returns a callback that drives a progress bar on stderr, and a
// function that finishes the bar. The callback is nil when no bar is shown.
func newProgress(path string, show bool) (func(done, total int), func()) {
	if !show || !stderrIsTerminal() {
		return nil, func() {}
	}
	bar := pb.New(0)
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", filepath.Base(path)+" ")
	bar.SetWriter(os.Stderr)
	started := false
	update := func(done, total int) {
		if !started {
			bar.SetTotal(int64(total))
			bar.Start()
			started = true
		}
		bar.SetCurrent(int64(done))
	}
	finish := func() {
		if started {
			bar.Finish()
		}
	}
	return update, finish
}
