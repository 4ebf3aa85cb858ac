// Package command maps typed operation parameters to git argument vectors.
// Every builder validates its parameters before any subprocess exists and
// produces exactly one argv shape per input combination, with flags emitted
// in a fixed order so downstream parsing stays predictable.
package command

// Spec is an ordered argument vector plus the working directory it runs in.
// It is immutable once built and consumed exactly once by the executor.
type Spec struct {
	Args []string
	Dir  string
}
