// Package commands provides CLI commands for chatscreen.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/chatscreen/internal/render"
)

// Version info (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// chatFlags are the root command's flags. Zero values mean "use config".
type chatFlags struct {
	title      string
	reply      string
	theme      string
	style      string
	transcript string
	format     string
	delayMs    int
	plain      bool
}

// NewRootCmd builds the command tree.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	flags := &chatFlags{}

	cmd := &cobra.Command{
		Use:   "chatscreen",
		Short: "A terminal chat screen that answers with a canned reply",
		Long: `chatscreen opens a chat screen in the terminal. Every message you send
is answered, after a short fixed delay, by the same canned markdown reply.
Nothing leaves your machine and nothing is kept after you quit.

When stdin is not a terminal (or with --plain), each input line is sent as
a message and replies are printed to stdout. End a line with '\' to continue
the message on the next line.

Examples:
  chatscreen                            Open the chat screen
  chatscreen --title Support            Custom header title
  printf 'Hello\nBye\n' | chatscreen    Line mode
  chatscreen --transcript chat.md       Save the session on exit
  chatscreen config show                Print effective configuration`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "chatscreen %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return runChat(cmd, deps, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.title, "title", "t", "", "Header title")
	f.StringVar(&flags.reply, "reply", "", "Canned reply body (markdown)")
	f.IntVar(&flags.delayMs, "delay", 0, "Reply delay in milliseconds")
	f.StringVar(&flags.theme, "theme", "", "Screen color theme ("+strings.Join(render.PaletteNames(), ", ")+")")
	f.StringVar(&flags.style, "style", "", "Markdown style (dark, light, dracula, auto, or a JSON file)")
	f.BoolVar(&flags.plain, "plain", false, "Line mode even when stdin is a terminal")
	f.StringVarP(&flags.transcript, "transcript", "o", "", "Write the conversation to this file on exit")
	f.StringVar(&flags.format, "format", "", "Transcript format: markdown, json, yaml (default: from file extension)")
	f.BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(NewConfigCmd())

	return cmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd(NewDependencies()).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
