package domain

// Status is the execution status of a machine, distinct from the simulated
// machine's own states.
type Status string

const (
	// StatusReady means input is loaded but no step ran yet.
	StatusReady Status = "ready"
	// StatusRunning means at least one step ran and the machine can continue.
	StatusRunning Status = "running"
	// StatusHaltedFinal means no transition applied while in a final state:
	// the input is accepted.
	StatusHaltedFinal Status = "halted_final"
	// StatusHaltedStuck means no transition applied in a non-final state:
	// the input is rejected.
	StatusHaltedStuck Status = "halted_stuck"
	// StatusHaltedStepLimit means the caller-supplied step ceiling was
	// reached before the machine halted on its own: inconclusive.
	StatusHaltedStepLimit Status = "halted_step_limit"
)

// Halted reports whether the status is terminal.
func (s Status) Halted() bool {
	switch s {
	case StatusHaltedFinal, StatusHaltedStuck, StatusHaltedStepLimit:
		return true
	}
	return false
}

// Accepted reports whether the machine halted in a final state.
func (s Status) Accepted() bool {
	return s == StatusHaltedFinal
}

// NoStepLimit disables the step ceiling on Run.
const NoStepLimit = -1

// StepResult describes one invocation of Step, for verbose tracing.
// When Halted is true no rule applied: only From, Consumed and Status are
// meaningful.
type StepResult struct {
	From     string `json:"from"`
	Consumed Symbol `json:"consumed"`
	Produced Symbol `json:"produced"`
	Move     Move   `json:"move"`
	To       string `json:"to,omitempty"`
	Halted   bool   `json:"halted,omitempty"`
	Status   Status `json:"status"`
}

// RunResult is the terminal outcome of Run: never an error, rejection is a
// normal result.
type RunResult struct {
	Status Status `json:"status"`
	Steps  int    `json:"steps"`
}

// Accepted reports whether the run ended in a final state.
func (r RunResult) Accepted() bool {
	return r.Status.Accepted()
}

// TapeSnapshot is a frozen view of the touched tape window.
type TapeSnapshot struct {
	// Cells holds every touched cell left to right, blanks materialized.
	Cells string `json:"cells"`
	// Head is the index of the head within Cells.
	Head int `json:"head"`
	// Origin is the logical position of Cells[0]; it goes negative when the
	// head extended the tape to the left of the input.
	Origin int `json:"origin"`
}

// Identifier is a read-only snapshot of a machine configuration: current
// state, tape and step count. Mutating it does not affect the machine.
type Identifier struct {
	State  string       `json:"state"`
	Steps  int          `json:"steps"`
	Status Status       `json:"status"`
	Tape   TapeSnapshot `json:"tape"`
}
