package render

import (
	"os"

	"github.com/diogo/chatscreen/internal/config"
)

// OptionsFromConfig builds render options from user configuration.
// GLAMOUR_STYLE takes precedence over the configured style.
func OptionsFromConfig(cfg config.Config) Options {
	md := cfg.Markdown
	return DefaultOptions().
		WithStyle(md.Style).
		WithStyle(os.Getenv("GLAMOUR_STYLE")).
		WithEmoji(md.EnableEmoji).
		WithPreserveNewLines(md.PreserveNewLines)
}
