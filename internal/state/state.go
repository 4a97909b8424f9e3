// Package state holds the plumbing shared by the state slices: action phases,
// the result type collaborator outcomes are converted into, and request
// generations for discarding stale responses.
package state

import "fmt"

// Phase is the lifecycle stage of an operation as observed by a slice.
type Phase int

const (
	Pending Phase = iota
	Fulfilled
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Action is implemented by every slice action. Each slice seals its own set
// of actions behind an unexported marker method.
type Action interface {
	Name() string
	Phase() Phase
}

// Listener observes actions after a slice has applied them.
type Listener func(slice string, action Action)

// Generation tags in-flight requests. It is not safe for concurrent use and
// is guarded by the owning slice's lock.
type Generation struct {
	n uint64
}

// Next advances the generation and returns the new value.
func (g *Generation) Next() uint64 {
	g.n++
	return g.n
}

// Current returns the latest issued value.
func (g *Generation) Current() uint64 {
	return g.n
}

// IsCurrent reports whether tag is still the latest issued value.
func (g *Generation) IsCurrent(tag uint64) bool {
	return tag == g.n
}
