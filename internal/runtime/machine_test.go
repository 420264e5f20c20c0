package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/machina/pkg/domain"
)

// abcModel is the canonical three-state example: A consumes `b` exactly and
// falls back to the wildcard for anything else; B is a dead end, C accepts.
func abcModel() *domain.Model {
	return &domain.Model{
		Alphabet: domain.DefaultAlphabet(),
		States: []domain.State{
			{
				Name:  "A",
				Start: true,
				Transitions: []domain.Transition{
					{Consumed: 'b', Produced: '_', Move: domain.MoveLeft, Next: "B"},
					{Consumed: '*', Produced: '*', Move: domain.MoveStay, Next: "C"},
				},
			},
			{Name: "B"},
			{Name: "C", Final: true},
		},
	}
}

func loopModel() *domain.Model {
	return &domain.Model{
		Alphabet: domain.DefaultAlphabet(),
		States: []domain.State{
			{
				Name:  "A",
				Start: true,
				Transitions: []domain.Transition{
					{Consumed: '*', Produced: '*', Move: domain.MoveRight, Next: "A"},
				},
			},
		},
	}
}

func TestMachine_ExactMatchRejects(t *testing.T) {
	m, err := NewMachine(abcModel())
	require.NoError(t, err)

	m.Input("b")
	res, err := m.Run(domain.NoStepLimit)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusHaltedStuck, res.Status)
	assert.False(t, res.Accepted())
	assert.Equal(t, 1, res.Steps)

	id := m.Identifier()
	assert.Equal(t, "B", id.State)
	assert.Equal(t, 1, id.Steps)
	// The exact rule wrote `_` at position 0 and moved left to -1.
	assert.Equal(t, "__", id.Tape.Cells)
	assert.Equal(t, 0, id.Tape.Head)
	assert.Equal(t, -1, id.Tape.Origin)
}

func TestMachine_WildcardFallbackAccepts(t *testing.T) {
	m, err := NewMachine(abcModel())
	require.NoError(t, err)

	m.Input("x")
	res, err := m.Run(domain.NoStepLimit)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusHaltedFinal, res.Status)
	assert.True(t, res.Accepted())
	assert.Equal(t, 1, res.Steps)

	// The wildcard's produced symbol is written literally, not the consumed
	// character.
	id := m.Identifier()
	assert.Equal(t, "C", id.State)
	assert.Equal(t, "*", id.Tape.Cells)
	assert.Equal(t, 0, id.Tape.Head)
}

func TestMachine_StepRecords(t *testing.T) {
	m, err := NewMachine(abcModel())
	require.NoError(t, err)

	m.Input("b")
	step, err := m.Step()
	require.NoError(t, err)
	assert.Equal(t, domain.StepResult{
		From:     "A",
		Consumed: 'b',
		Produced: '_',
		Move:     domain.MoveLeft,
		To:       "B",
		Status:   domain.StatusRunning,
	}, step)

	// Second lookup finds nothing in the non-final B: stuck halt, reported
	// as a result, not an error.
	step, err = m.Step()
	require.NoError(t, err)
	assert.True(t, step.Halted)
	assert.Equal(t, "B", step.From)
	assert.Equal(t, domain.StatusHaltedStuck, step.Status)
}

func TestMachine_StepAfterHalt(t *testing.T) {
	m, err := NewMachine(abcModel())
	require.NoError(t, err)

	m.Input("x")
	_, err = m.Run(domain.NoStepLimit)
	require.NoError(t, err)
	before := m.Identifier()

	_, err = m.Step()
	assert.True(t, errors.Is(err, domain.ErrMachineHalted))
	assert.Equal(t, before, m.Identifier(), "halted machine must not mutate")
}

func TestMachine_StepLimit(t *testing.T) {
	t.Run("ceiling reached", func(t *testing.T) {
		m, err := NewMachine(loopModel())
		require.NoError(t, err)

		m.Input("abc")
		res, err := m.Run(5)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusHaltedStepLimit, res.Status)
		assert.Equal(t, 5, res.Steps)
	})

	t.Run("zero limit executes nothing", func(t *testing.T) {
		m, err := NewMachine(loopModel())
		require.NoError(t, err)

		m.Input("abc")
		res, err := m.Run(0)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusHaltedStepLimit, res.Status)
		assert.Equal(t, 0, res.Steps)
		assert.Equal(t, "abc", m.Identifier().Tape.Cells)
	})

	t.Run("limit above halt is inert", func(t *testing.T) {
		m, err := NewMachine(abcModel())
		require.NoError(t, err)

		m.Input("b")
		res, err := m.Run(100)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusHaltedStuck, res.Status)
		assert.Equal(t, 1, res.Steps)
	})
}

func TestMachine_NoInput(t *testing.T) {
	m, err := NewMachine(abcModel())
	require.NoError(t, err)

	_, err = m.Step()
	assert.True(t, errors.Is(err, domain.ErrNoInput))
	_, err = m.Run(domain.NoStepLimit)
	assert.True(t, errors.Is(err, domain.ErrNoInput))
}

func TestMachine_EmptyInputReadsBlank(t *testing.T) {
	m, err := NewMachine(abcModel())
	require.NoError(t, err)

	// Blank is not `b`, so the wildcard fires and the machine accepts.
	m.Input("")
	res, err := m.Run(domain.NoStepLimit)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHaltedFinal, res.Status)
}

func TestMachine_InputResets(t *testing.T) {
	m, err := NewMachine(abcModel())
	require.NoError(t, err)

	m.Input("x")
	_, err = m.Run(domain.NoStepLimit)
	require.NoError(t, err)

	m.Input("b")
	assert.Equal(t, domain.StatusReady, m.Status())
	id := m.Identifier()
	assert.Equal(t, "A", id.State)
	assert.Equal(t, 0, id.Steps)
	assert.Equal(t, "b", id.Tape.Cells)
}

func TestMachine_Reset(t *testing.T) {
	m, err := NewMachine(abcModel())
	require.NoError(t, err)

	m.Input("x")
	_, err = m.Run(domain.NoStepLimit)
	require.NoError(t, err)

	m.Reset()
	assert.Equal(t, domain.StatusReady, m.Status())
	assert.Equal(t, "A", m.Identifier().State)
	_, err = m.Step()
	assert.True(t, errors.Is(err, domain.ErrNoInput))
}

func TestMachine_Hooks(t *testing.T) {
	var steps, halts int
	m, err := NewMachine(abcModel(), WithHooks(domain.LifecycleHooks{
		OnStep: func(ev *domain.StepEvent) { steps++ },
		OnHalt: func(ev *domain.HaltEvent) { halts++ },
	}))
	require.NoError(t, err)

	m.Input("x")
	_, err = m.Run(domain.NoStepLimit)
	require.NoError(t, err)

	assert.Equal(t, 1, steps)
	assert.Equal(t, 1, halts)
}

func TestMachine_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		model *domain.Model
	}{
		{
			name: "no start state",
			model: &domain.Model{
				Alphabet: domain.DefaultAlphabet(),
				States:   []domain.State{{Name: "A"}},
			},
		},
		{
			name: "two start states",
			model: &domain.Model{
				Alphabet: domain.DefaultAlphabet(),
				States: []domain.State{
					{Name: "A", Start: true},
					{Name: "B", Start: true},
				},
			},
		},
		{
			name: "duplicate names",
			model: &domain.Model{
				Alphabet: domain.DefaultAlphabet(),
				States: []domain.State{
					{Name: "A", Start: true},
					{Name: "A"},
				},
			},
		},
		{
			name: "dangling next reference",
			model: &domain.Model{
				Alphabet: domain.DefaultAlphabet(),
				States: []domain.State{
					{Name: "A", Start: true, Transitions: []domain.Transition{
						{Consumed: '0', Produced: '1', Move: domain.MoveRight, Next: "ghost"},
					}},
				},
			},
		},
		{
			name: "colliding sentinels",
			model: &domain.Model{
				Alphabet: domain.Alphabet{Blank: '_', Wildcard: '_'},
				States:   []domain.State{{Name: "A", Start: true}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMachine(tt.model)
			assert.Nil(t, m, "no partially constructed machine")
			var verr *domain.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestMachine_ModelCopyIsIndependent(t *testing.T) {
	model := abcModel()
	m, err := NewMachine(model)
	require.NoError(t, err)

	// Mutating the caller's model must not affect the machine.
	model.States[0].Transitions[0].Next = "C"
	m.Input("b")
	res, err := m.Run(domain.NoStepLimit)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusHaltedStuck, res.Status)
	assert.Equal(t, "B", m.Identifier().State)
}
