package theme

import "github.com/narwhalmedia/marquee/pkg/models"

// SetThemeForTest forces the in-memory theme without touching storage.
func (s *Slice) SetThemeForTest(t models.Theme) {
	s.dispatch(Set{Theme: t})
}
