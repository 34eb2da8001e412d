package adapters

import (
	"fmt"
	"io"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
)

type terminalPresenter struct {
	out io.Writer
}

// NewTerminalPresenter types transcripts onto the given writer, one rune
// per cadence tick, the way the sequencer feeds them.
func NewTerminalPresenter(out io.Writer) outbound.TranscriptPresenterPort {
	return &terminalPresenter{out: out}
}

func (p *terminalPresenter) BeginTranscript(index int, _ string) {
	fmt.Fprintf(p.out, "%d> ", index+1)
}

func (p *terminalPresenter) AppendRune(r rune) {
	fmt.Fprintf(p.out, "%c", r)
}

func (p *terminalPresenter) EndTranscript(_ int) {
	fmt.Fprintln(p.out)
}
