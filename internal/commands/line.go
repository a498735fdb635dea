package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/diogo/chatscreen/internal/chat"
	"github.com/diogo/chatscreen/internal/render"
)

// runLineMode feeds each input line to the screen through a Runner and
// prints every appended message to out. A line ending in '\' continues the
// message on the next line. After EOF it waits for outstanding replies.
func runLineMode(ctx context.Context, in io.Reader, out io.Writer, screen *chat.Screen, opts render.Options, logger zerolog.Logger, runnerOpts ...chat.RunnerOption) ([]chat.Message, error) {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = opts.WithWidth(80)

	// Runs on the runner goroutine, so writes to out never interleave
	show := func(m chat.Message) {
		if m.Origin == chat.User {
			for _, line := range strings.Split(render.Literal(m.Body), "\n") {
				fmt.Fprintf(out, "> %s\n", line)
			}
			return
		}
		fmt.Fprintf(out, "%s\n\n", render.Body(m, opts))
	}

	runner := chat.NewRunner(screen, show, append([]chat.RunnerOption{chat.WithRunnerLogger(logger)}, runnerOpts...)...)

	stopped := make(chan error, 1)
	go func() {
		stopped <- runner.Run(ctx)
	}()

	// A blocked read on in must not keep an interrupted session alive
	fed := make(chan error, 1)
	go func() {
		fed <- feedLines(in, runner)
	}()

	var err error
	select {
	case err = <-fed:
		if err == nil {
			err = runner.Drain(ctx)
		}
	case <-ctx.Done():
	}

	cancel()
	<-stopped

	// The loop has exited, so the screen has no other writer left
	msgs := screen.Messages()

	// An interrupted session ends quietly with whatever was exchanged
	if parent.Err() != nil {
		return msgs, nil
	}
	return msgs, err
}

func feedLines(in io.Reader, runner *chat.Runner) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var typed strings.Builder
	for scanner.Scan() {
		line := scanner.Text()

		if cont, ok := strings.CutSuffix(line, `\`); ok {
			typed.WriteString(cont + "\n")
			if err := runner.Type(cont); err != nil {
				return err
			}
			if err := runner.Press(chat.ShiftEnter); err != nil {
				return err
			}
			continue
		}

		typed.WriteString(line)
		if err := runner.Type(line); err != nil {
			return err
		}
		if err := runner.Press(chat.Enter); err != nil {
			return err
		}

		// A rejected blank line is discarded rather than carried into the next one
		if strings.TrimSpace(typed.String()) == "" {
			if err := runner.SetInput(""); err != nil {
				return err
			}
		}
		typed.Reset()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
