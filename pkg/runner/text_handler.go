package runner

import (
	"fmt"
	"io"

	"github.com/aretw0/machina/pkg/domain"
	"github.com/aretw0/machina/pkg/ports"
)

// TextSink writes a human-readable trace: one line per step and a small
// block for the final configuration.
type TextSink struct {
	Writer   io.Writer
	Renderer IdentifierRenderer
}

// NewTextSink creates a text sink. renderer may be nil.
func NewTextSink(w io.Writer, renderer IdentifierRenderer) *TextSink {
	return &TextSink{Writer: w, Renderer: renderer}
}

var _ ports.TraceSink = (*TextSink)(nil)

func (s *TextSink) WriteStep(ev *domain.StepEvent) error {
	r := ev.Result
	_, err := fmt.Fprintf(s.Writer, "%4d  %s --%s/%s %s--> %s\n",
		ev.Index, r.From, r.Consumed, r.Produced, r.Move, r.To)
	return err
}

func (s *TextSink) WriteResult(id domain.Identifier, res domain.RunResult) error {
	if s.Renderer != nil {
		_, err := fmt.Fprintln(s.Writer, s.Renderer(id))
		return err
	}
	verdict := "rejected"
	switch res.Status {
	case domain.StatusHaltedFinal:
		verdict = "accepted"
	case domain.StatusHaltedStepLimit:
		verdict = "inconclusive"
	}
	_, err := fmt.Fprintf(s.Writer, "state: %s\nstatus: %s (%s)\nsteps: %d\ntape: %s\nhead: %d (origin %d)\n",
		id.State, res.Status, verdict, res.Steps, id.Tape.Cells, id.Tape.Head, id.Tape.Origin)
	return err
}
