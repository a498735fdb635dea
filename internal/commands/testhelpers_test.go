package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/diogo/chatscreen/internal/chat"
	"github.com/diogo/chatscreen/internal/tui"
)

// fakeTUI stands in for the bubbletea program. It types each script entry
// into the screen, presses Enter, and delivers every reply at once.
type fakeTUI struct {
	script []string
	opts   tui.Options
	calls  int
	err    error
}

func (f *fakeTUI) RunChat(ctx context.Context, opts tui.Options) ([]chat.Message, error) {
	f.calls++
	f.opts = opts

	var tasks []chat.Task
	for _, text := range f.script {
		opts.Screen.UpdateInput(text)
		if task, scheduled, _ := opts.Screen.OnKey(chat.Enter); scheduled {
			tasks = append(tasks, task)
		}
	}
	for _, task := range tasks {
		opts.Screen.Deliver(task)
	}
	return opts.Screen.Messages(), f.err
}

// immediate fires reply timers straight away, ignoring the delay.
func immediate(d time.Duration, fn func()) {
	go fn()
}

// testEnv isolates config and logs in a temp dir.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CHATSCREEN_CONFIG_DIR", dir)
	t.Setenv("GLAMOUR_STYLE", "")
	return dir
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

func runCmd(t *testing.T, deps *Dependencies, stdin string, args ...string) runResult {
	t.Helper()

	cmd := NewRootCmd(deps)
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return runResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func tuiDeps(f *fakeTUI) *Dependencies {
	return &Dependencies{
		TUI:        f,
		IsTerminal: func() bool { return true },
	}
}

func lineDeps() *Dependencies {
	return &Dependencies{
		TUI:           &fakeTUI{},
		IsTerminal:    func() bool { return false },
		RunnerOptions: []chat.RunnerOption{chat.WithAfterFunc(immediate)},
	}
}
