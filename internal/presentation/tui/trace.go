// Package tui renders machine configurations for interactive terminals.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/machina/pkg/domain"
)

// RenderIdentifier formats a configuration snapshot with the head cell
// highlighted. Colors degrade gracefully on dumb terminals via termenv's
// profile detection.
func RenderIdentifier(id domain.Identifier) string {
	p := termenv.ColorProfile()

	state := termenv.String(id.State).Foreground(p.Color("#818cf8")).Bold()
	status := termenv.String(string(id.Status)).Foreground(statusColor(p, id.Status))

	var tape strings.Builder
	for i, c := range []rune(id.Tape.Cells) {
		cell := termenv.String(string(c))
		if i == id.Tape.Head {
			cell = cell.Reverse().Bold()
		}
		tape.WriteString(cell.String())
	}

	return fmt.Sprintf("state: %s  status: %s  steps: %d\ntape:  %s\n       %s^ position %d",
		state, status, id.Steps, tape.String(),
		strings.Repeat(" ", id.Tape.Head), id.Tape.Origin+id.Tape.Head)
}

func statusColor(p termenv.Profile, s domain.Status) termenv.Color {
	switch s {
	case domain.StatusHaltedFinal:
		return p.Color("#34d399")
	case domain.StatusHaltedStuck:
		return p.Color("#fb7185")
	case domain.StatusHaltedStepLimit:
		return p.Color("#fbbf24")
	}
	return p.Color("#a78bfa")
}
