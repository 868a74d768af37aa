package domain

import "strings"

// Confirmer obtains a yes/no answer from outside the model, typically a
// person at a prompt. It is consulted before a product price is lowered.
//
// An error means no answer could be obtained (for example io.EOF on a closed
// terminal) and is treated as a refusal.
type Confirmer interface {
	Confirm(question string) (answer string, err error)
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(question string) (string, error)

// Confirm calls f(question).
func (f ConfirmerFunc) Confirm(question string) (string, error) {
	return f(question)
}

// Affirmative reports whether answer approves a change. Only "y" in either
// case does; "yes" does not.
func Affirmative(answer string) bool {
	return strings.EqualFold(answer, "y")
}
