package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/diogo/chatscreen/internal/chat"
)

// Markdown renders markdown content for terminal display.
// Uses a pooled renderer, so it is safe to call from several goroutines.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(Sanitize(content))
}

// Literal returns text exactly as typed, minus anything that would drive the
// terminal. Markdown syntax is left alone.
func Literal(content string) string {
	return Sanitize(content)
}

// Body renders a message body for display. System bodies go through the
// markdown renderer; if that fails the raw text is shown instead. User bodies
// are never interpreted.
func Body(msg chat.Message, opts Options) string {
	if !msg.IsMarkdown() {
		return Literal(msg.Body)
	}

	rendered, err := Markdown(msg.Body, opts)
	if err != nil {
		return Literal(msg.Body)
	}
	return strings.Trim(rendered, "\n")
}

// Sanitize strips ANSI escape sequences and control characters other than
// newline and tab.
func Sanitize(content string) string {
	stripped := ansi.Strip(content)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, stripped)
}
