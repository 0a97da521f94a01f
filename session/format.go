package session

import "github.com/gookit/color"

// style colours output fragments when enabled and passes them through
// untouched otherwise.
type style struct {
	enabled bool
}

func (s style) paint(c color.Color, text string) string {
	if !s.enabled {
		return text
	}
	return c.Sprint(text)
}

func (s style) err(text string) string   { return s.paint(color.Red, text) }
func (s style) warn(text string) string  { return s.paint(color.Yellow, text) }
func (s style) op(text string) string    { return s.paint(color.Bold, text) }
func (s style) stack(text string) string { return s.paint(color.Cyan, text) }
func (s style) id(text string) string    { return s.paint(color.Magenta, text) }
