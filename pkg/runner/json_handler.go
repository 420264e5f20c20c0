package runner

import (
	"encoding/json"
	"io"

	"github.com/aretw0/machina/pkg/domain"
	"github.com/aretw0/machina/pkg/ports"
)

// JSONSink writes the trace as JSON-Lines: one object per step, then one
// result object. Suited for piping into other tooling.
type JSONSink struct {
	Encoder *json.Encoder
}

// NewJSONSink creates an NDJSON sink on w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{Encoder: json.NewEncoder(w)}
}

var _ ports.TraceSink = (*JSONSink)(nil)

type jsonStepRecord struct {
	Type  domain.EventType  `json:"type"`
	Index int               `json:"index"`
	Step  domain.StepResult `json:"step"`
}

type jsonResultRecord struct {
	Type     domain.EventType    `json:"type"`
	Status   domain.Status       `json:"status"`
	Accepted bool                `json:"accepted"`
	Steps    int                 `json:"steps"`
	State    string              `json:"state"`
	Tape     domain.TapeSnapshot `json:"tape"`
}

func (s *JSONSink) WriteStep(ev *domain.StepEvent) error {
	return s.Encoder.Encode(jsonStepRecord{
		Type:  domain.EventStep,
		Index: ev.Index,
		Step:  ev.Result,
	})
}

func (s *JSONSink) WriteResult(id domain.Identifier, res domain.RunResult) error {
	return s.Encoder.Encode(jsonResultRecord{
		Type:     domain.EventHalt,
		Status:   res.Status,
		Accepted: res.Accepted(),
		Steps:    res.Steps,
		State:    id.State,
		Tape:     id.Tape,
	})
}
