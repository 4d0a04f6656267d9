package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayTitle renders free-text instructions the way the feed displays
// them.
func displayTitle(instructions string) string {
	if instructions == "" {
		return "(no instructions)"
	}
	return titleCaser.String(instructions)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func parsePhotoID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid photo id %q", arg)
	}
	return id, nil
}

func isTerminalWriter(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// progressRenderer draws the processing bar on a tty and stays silent
// elsewhere (progress still lands in the session log).
type progressRenderer struct {
	bar *progressbar.ProgressBar
}

func newProgressRenderer(w io.Writer) *progressRenderer {
	if !isTerminalWriter(w) {
		return &progressRenderer{}
	}
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Fixing your photo..."),
		progressbar.OptionClearOnFinish(),
	)
	return &progressRenderer{bar: bar}
}

func (p *progressRenderer) update(percent float64) {
	if p.bar != nil {
		_ = p.bar.Set(int(percent))
	}
}

func (p *progressRenderer) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
