package domain

import "fmt"

// Transition defines a rule to rewrite the tape and move to another state.
//
// Consumed may be the model's wildcard symbol, in which case the rule matches
// any symbol that no exact rule of the same state matches. Produced is always
// written literally, wildcard included.
type Transition struct {
	Consumed Symbol
	Produced Symbol
	Move     Move
	Next     string
}

func (t Transition) String() string {
	return fmt.Sprintf("%s/%s %s -> %s", t.Consumed, t.Produced, t.Move, t.Next)
}
