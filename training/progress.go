package training

import (
	"fmt"

	"github.com/gosuri/uilive"
)

// Progress renders a single live status line for interactive runs.
type Progress struct {
	writer *uilive.Writer
}

func NewProgress() *Progress {
	writer := uilive.New()
	writer.Start()
	return &Progress{
		writer: writer,
	}
}

func (p *Progress) Update(format string, args ...interface{}) {
	fmt.Fprintf(p.writer, format+"\n", args...)
}

func (p *Progress) Stop() {
	p.writer.Stop()
}
