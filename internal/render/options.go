// Package render provides markdown rendering and result card formatting
// for terminal output.
package render

import (
	"os"

	"golang.org/x/term"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/config"
)

// Options configures the markdown renderer behavior.
type Options struct {
	// Width defines the maximum output width (default: 80)
	Width int

	// Style defines the theme: "dark", "light", or path to JSON file
	Style string

	// EnableEmoji converts :emoji: to unicode characters
	EnableEmoji bool

	// PreserveNewLines preserves original line breaks
	PreserveNewLines bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// FromConfig builds Options from the persisted markdown settings.
func FromConfig(md config.MarkdownConfig) Options {
	opts := DefaultOptions()
	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines
	return opts
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// TerminalWidth returns the current terminal width, or the default when
// stdout is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultOptions().Width
}
