package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diogo/chatscreen/internal/chat"
	"github.com/diogo/chatscreen/internal/config"
	"github.com/diogo/chatscreen/internal/logging"
	"github.com/diogo/chatscreen/internal/render"
	"github.com/diogo/chatscreen/internal/transcript"
	"github.com/diogo/chatscreen/internal/tui"
)

// loadSettings merges the config file with flags the user set explicitly.
func loadSettings(cmd *cobra.Command, flags *chatFlags) (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("title") {
		cfg.Title = flags.title
	}
	if f.Changed("reply") {
		cfg.CannedReply = flags.reply
	}
	if f.Changed("delay") {
		cfg.ReplyDelayMs = flags.delayMs
	}
	if f.Changed("theme") {
		cfg.TUITheme = flags.theme
	}
	if f.Changed("style") {
		cfg.Markdown.Style = flags.style
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runChat(cmd *cobra.Command, deps *Dependencies, flags *chatFlags) error {
	cfg, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}

	// Resolve the transcript format before the session so a typo fails fast
	var format transcript.Format
	if flags.transcript != "" {
		format = transcript.FormatForPath(flags.transcript)
		if flags.format != "" {
			if format, err = transcript.ParseFormat(flags.format); err != nil {
				return err
			}
		}
	}

	logger, closer, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
		logger = logging.Nop()
	}
	defer closer.Close()

	screen := chat.NewScreen(
		chat.WithReply(cfg.CannedReply),
		chat.WithDelay(cfg.ReplyDelay()),
		chat.WithLogger(logger),
	)
	renderOpts := render.OptionsFromConfig(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	started := time.Now()
	var msgs []chat.Message
	lineMode := flags.plain || (deps.IsTerminal != nil && !deps.IsTerminal())
	if lineMode {
		logger.Info().Msg("starting line mode")
		msgs, err = runLineMode(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), screen, renderOpts, logger, deps.RunnerOptions...)
	} else {
		logger.Info().Str("theme", cfg.TUITheme).Msg("starting chat screen")
		msgs, err = deps.TUI.RunChat(ctx, tui.Options{
			Title:           cfg.Title,
			Screen:          screen,
			Render:          renderOpts,
			Palette:         render.PaletteOrDefault(cfg.TUITheme),
			CopyToClipboard: cfg.CopyToClipboard,
			Logger:          logger,
		})
		if errors.Is(err, tea.ErrProgramKilled) {
			err = nil
		}
	}
	if err != nil {
		return err
	}

	logger.Info().
		Int("messages", len(msgs)).
		Dur("duration", time.Since(started)).
		Msg("session ended")

	if flags.transcript == "" {
		return nil
	}
	return saveTranscript(cmd, logger, flags.transcript, format, cfg.Title, msgs)
}

func saveTranscript(cmd *cobra.Command, logger zerolog.Logger, path string, format transcript.Format, title string, msgs []chat.Message) error {
	t := transcript.New(title, msgs, time.Now())
	if err := transcript.WriteFile(path, t, format); err != nil {
		return err
	}
	logger.Info().Str("path", path).Str("format", string(format)).Msg("transcript written")
	fmt.Fprintf(cmd.ErrOrStderr(), "Transcript saved to %s\n", path)
	return nil
}
