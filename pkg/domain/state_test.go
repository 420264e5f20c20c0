package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindTransition_ExactBeatsWildcard(t *testing.T) {
	state := &State{
		Name: "q0",
		Transitions: []Transition{
			{Consumed: '*', Produced: '*', Move: MoveStay, Next: "fallback"},
			{Consumed: 'x', Produced: 'y', Move: MoveRight, Next: "exact"},
		},
	}

	// Even declared after the wildcard, the exact rule wins.
	tr, ok := state.FindTransition('x', DefaultWildcard)
	assert.True(t, ok)
	assert.Equal(t, "exact", tr.Next)

	tr, ok = state.FindTransition('z', DefaultWildcard)
	assert.True(t, ok)
	assert.Equal(t, "fallback", tr.Next)
}

func TestFindTransition_DeclarationOrder(t *testing.T) {
	state := &State{
		Name: "q0",
		Transitions: []Transition{
			{Consumed: 'a', Produced: '1', Move: MoveRight, Next: "first"},
			{Consumed: 'a', Produced: '2', Move: MoveRight, Next: "second"},
		},
	}

	tr, ok := state.FindTransition('a', DefaultWildcard)
	assert.True(t, ok)
	assert.Equal(t, "first", tr.Next, "first declared rule wins")
}

func TestFindTransition_None(t *testing.T) {
	state := &State{Name: "sink"}
	_, ok := state.FindTransition('a', DefaultWildcard)
	assert.False(t, ok)
}

func TestFindTransition_WildcardMatchesBlank(t *testing.T) {
	state := &State{
		Name: "q0",
		Transitions: []Transition{
			{Consumed: '*', Produced: '*', Move: MoveStay, Next: "any"},
		},
	}
	tr, ok := state.FindTransition(DefaultBlank, DefaultWildcard)
	assert.True(t, ok)
	assert.Equal(t, "any", tr.Next)
}
