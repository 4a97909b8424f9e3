package theme

import (
	"github.com/narwhalmedia/marquee/internal/state"
	"github.com/narwhalmedia/marquee/pkg/models"
)

// Action is the closed set of theme actions.
type Action interface {
	state.Action
	themeAction()
}

// Restored applies the theme read from storage at startup.
type Restored struct {
	Theme models.Theme
}

// Toggled flips between light and dark.
type Toggled struct{}

// Set applies an explicit theme.
type Set struct {
	Theme models.Theme
}

func (Restored) Name() string { return "theme/restored" }
func (Toggled) Name() string  { return "theme/toggled" }
func (Set) Name() string      { return "theme/set" }

func (Restored) Phase() state.Phase { return state.Fulfilled }
func (Toggled) Phase() state.Phase  { return state.Fulfilled }
func (Set) Phase() state.Phase      { return state.Fulfilled }

func (Restored) themeAction() {}
func (Toggled) themeAction()  {}
func (Set) themeAction()      {}
