package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for different elements in the report
type ColorScheme struct {
	LogoLeft   *color.Color
	LogoRight  *color.Color
	Border     *color.Color
	Title      *color.Color
	Label      *color.Color
	Success    *color.Color
	Partial    *color.Color
	Failure    *color.Color
	Value      *color.Color
	Highlight  *color.Color
	ErrorTitle *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		LogoLeft:   color.New(color.FgBlue, color.Bold),
		LogoRight:  color.New(color.FgGreen, color.Bold),
		Border:     color.New(color.FgBlue, color.Bold),
		Title:      color.New(color.FgCyan, color.Bold),
		Label:      color.New(color.Bold),
		Success:    color.New(color.FgGreen, color.Bold),
		Partial:    color.New(color.FgYellow, color.Bold),
		Failure:    color.New(color.FgRed, color.Bold),
		Value:      color.New(color.FgWhite),
		Highlight:  color.New(color.FgMagenta, color.Bold),
		ErrorTitle: color.New(color.FgRed, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.LogoLeft.DisableColor()
	scheme.LogoRight.DisableColor()
	scheme.Border.DisableColor()
	scheme.Title.DisableColor()
	scheme.Label.DisableColor()
	scheme.Success.DisableColor()
	scheme.Partial.DisableColor()
	scheme.Failure.DisableColor()
	scheme.Value.DisableColor()
	scheme.Highlight.DisableColor()
	scheme.ErrorTitle.DisableColor()

	return scheme
}

// SchemeFor picks a scheme based on the noColor flag and whether w is a
// terminal.
func SchemeFor(w io.Writer, noColor bool) *ColorScheme {
	if noColor || !IsTerminal(w) {
		return NoColorScheme()
	}
	return DefaultColorScheme()
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
