package runtime

import "github.com/aretw0/machina/pkg/domain"

// Tape is the machine's storage: conceptually infinite in both directions,
// materialized as a growable window of cells anchored at an origin offset.
// The head may walk past either edge; moving extends the window with blanks,
// so position -1 is as addressable as position 0.
type Tape struct {
	cells  []domain.Symbol
	head   int // index into cells
	origin int // logical position of cells[0]
	blank  domain.Symbol
}

// NewTape seeds a tape with the input string written left to right from
// logical position 0, head on position 0.
func NewTape(input string, blank domain.Symbol) *Tape {
	runes := []rune(input)
	cells := make([]domain.Symbol, len(runes))
	for i, r := range runes {
		cells[i] = domain.Symbol(r)
	}
	return &Tape{cells: cells, blank: blank}
}

// Read returns the symbol under the head, or blank for a cell never written.
func (t *Tape) Read() domain.Symbol {
	if t.head < 0 || t.head >= len(t.cells) {
		return t.blank
	}
	return t.cells[t.head]
}

// Write sets the symbol under the head, extending the window if needed.
func (t *Tape) Write(s domain.Symbol) {
	t.materialize()
	t.cells[t.head] = s
}

// Move shifts the head one cell in the given direction. The tape has no
// edges: leaving the window grows it with a blank cell.
func (t *Tape) Move(m domain.Move) {
	switch m {
	case domain.MoveLeft:
		t.head--
	case domain.MoveRight:
		t.head++
	case domain.MoveStay:
		return
	}
	t.materialize()
}

// Head returns the logical head position (0 is where input started).
func (t *Tape) Head() int {
	return t.origin + t.head
}

// Snapshot freezes the touched window for inspection. It never pads beyond
// cells the head actually visited.
func (t *Tape) Snapshot() domain.TapeSnapshot {
	t.materialize()
	cells := make([]rune, len(t.cells))
	for i, s := range t.cells {
		cells[i] = rune(s)
	}
	return domain.TapeSnapshot{
		Cells:  string(cells),
		Head:   t.head,
		Origin: t.origin,
	}
}

// materialize grows the window so the head sits on a real cell.
func (t *Tape) materialize() {
	if t.head < 0 {
		pad := make([]domain.Symbol, -t.head)
		for i := range pad {
			pad[i] = t.blank
		}
		t.origin += t.head
		t.cells = append(pad, t.cells...)
		t.head = 0
	}
	for t.head >= len(t.cells) {
		t.cells = append(t.cells, t.blank)
	}
}
