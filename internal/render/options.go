// Package render turns message bodies into terminal text: markdown for System
// replies, literal text for everything the user typed.
package render

// Options selects how System bodies are rendered. Options is comparable and
// doubles as the renderer pool key.
type Options struct {
	Width            int
	Style            string // glamour style name or path to a JSON style
	EnableEmoji      bool
	PreserveNewLines bool
}

// DefaultOptions renders 80 columns wide with the dark style.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// WithWidth sets the wrap width; 0 disables wrapping.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle sets the glamour style; an empty name keeps the current one.
func (o Options) WithStyle(style string) Options {
	if style != "" {
		o.Style = style
	}
	return o
}

func (o Options) WithEmoji(enabled bool) Options {
	o.EnableEmoji = enabled
	return o
}

func (o Options) WithPreserveNewLines(enabled bool) Options {
	o.PreserveNewLines = enabled
	return o
}
