package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// treeProgress renders directory diff progress on stderr.
type treeProgress struct {
	quiet bool
	out   io.Writer
	bar   *progressbar.ProgressBar
}

func newTreeProgress(out io.Writer, quiet bool) *treeProgress {
	return &treeProgress{quiet: quiet, out: out}
}

func (p *treeProgress) OnStart(total int) {
	if p.quiet || total == 0 {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription("Comparing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(p.out)
		}),
	)
}

func (p *treeProgress) OnFile(path string) {
	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p *treeProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
