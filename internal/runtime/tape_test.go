package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/machina/pkg/domain"
)

func TestTape_ReadWrite(t *testing.T) {
	tape := NewTape("0101", domain.DefaultBlank)

	assert.Equal(t, domain.Symbol('0'), tape.Read())

	tape.Write('1')
	assert.Equal(t, domain.Symbol('1'), tape.Read())

	// Round-trip holds regardless of prior movement.
	tape.Move(domain.MoveRight)
	tape.Move(domain.MoveRight)
	tape.Write('x')
	assert.Equal(t, domain.Symbol('x'), tape.Read())
}

func TestTape_EmptyReadsBlank(t *testing.T) {
	tape := NewTape("", domain.DefaultBlank)
	assert.Equal(t, domain.DefaultBlank, tape.Read())

	tape.Write('1')
	assert.Equal(t, domain.Symbol('1'), tape.Read())
}

func TestTape_NegativeExtension(t *testing.T) {
	tape := NewTape("ab", domain.DefaultBlank)

	// Position -1 must become addressable and blank-initialized.
	tape.Move(domain.MoveLeft)
	assert.Equal(t, -1, tape.Head())
	assert.Equal(t, domain.DefaultBlank, tape.Read())

	tape.Write('z')
	assert.Equal(t, domain.Symbol('z'), tape.Read())

	snap := tape.Snapshot()
	assert.Equal(t, "zab", snap.Cells)
	assert.Equal(t, 0, snap.Head)
	assert.Equal(t, -1, snap.Origin)
}

func TestTape_RightExtension(t *testing.T) {
	tape := NewTape("a", domain.DefaultBlank)

	tape.Move(domain.MoveRight)
	assert.Equal(t, 1, tape.Head())
	assert.Equal(t, domain.DefaultBlank, tape.Read())

	snap := tape.Snapshot()
	assert.Equal(t, "a_", snap.Cells)
	assert.Equal(t, 1, snap.Head)
	assert.Equal(t, 0, snap.Origin)
}

func TestTape_StayKeepsPosition(t *testing.T) {
	tape := NewTape("ab", domain.DefaultBlank)
	tape.Move(domain.MoveStay)
	assert.Equal(t, 0, tape.Head())
	assert.Equal(t, domain.Symbol('a'), tape.Read())
}

func TestTape_CustomBlank(t *testing.T) {
	tape := NewTape("", domain.Symbol('#'))
	tape.Move(domain.MoveLeft)
	assert.Equal(t, domain.Symbol('#'), tape.Read())

	snap := tape.Snapshot()
	assert.Equal(t, "#", snap.Cells)
	assert.Equal(t, -1, snap.Origin)
}

func TestTape_WalkAndSnapshot(t *testing.T) {
	tape := NewTape("01", domain.DefaultBlank)

	tape.Write('1')
	tape.Move(domain.MoveRight)
	tape.Write('0')
	tape.Move(domain.MoveRight)
	tape.Write('1')
	tape.Move(domain.MoveLeft)
	tape.Move(domain.MoveLeft)
	tape.Move(domain.MoveLeft)

	snap := tape.Snapshot()
	assert.Equal(t, "_101", snap.Cells)
	assert.Equal(t, 0, snap.Head)
	assert.Equal(t, -1, snap.Origin)
	assert.Equal(t, -1, tape.Head())
}
