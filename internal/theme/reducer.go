package theme

import (
	"fmt"

	"github.com/narwhalmedia/marquee/pkg/models"
)

// State is the theme slice state.
type State struct {
	Theme models.Theme `json:"theme"`
}

// InitialState is the state before storage has been read.
func InitialState() State {
	return State{Theme: models.DefaultTheme}
}

// Reduce applies a to s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Restored:
		s.Theme = a.Theme
	case Toggled:
		s.Theme = s.Theme.Toggled()
	case Set:
		s.Theme = a.Theme
	default:
		panic(fmt.Sprintf("theme: unhandled action %T", a))
	}
	return s
}
