package chat

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrStopped is returned when an operation reaches a Runner whose loop has exited.
var ErrStopped = errors.New("chat runner stopped")

// Runner drives a Screen from a single goroutine. Callers and reply timers
// never touch the screen; they send closures into the loop, which applies
// them one at a time.
type Runner struct {
	screen   *Screen
	queue    *Queue
	events   chan func()
	done     chan struct{}
	onAppend func(Message)
	after    func(time.Duration, func())
	waiters  []chan struct{}
	logger   zerolog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithAfterFunc replaces time.AfterFunc for scheduling replies.
func WithAfterFunc(after func(time.Duration, func())) RunnerOption {
	return func(r *Runner) {
		r.after = after
	}
}

// WithRunnerLogger sets the logger.
func WithRunnerLogger(logger zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner returns a Runner for screen. onAppend, if not nil, is called on
// the loop goroutine for every message appended to the conversation.
func NewRunner(screen *Screen, onAppend func(Message), opts ...RunnerOption) *Runner {
	r := &Runner{
		screen:   screen,
		queue:    NewQueue(time.Now()),
		events:   make(chan func(), 16),
		done:     make(chan struct{}),
		onAppend: onAppend,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes events until ctx is done. It must be called exactly once.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	r.logger.Debug().Msg("runner started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug().Int("pending", r.screen.Pending()).Msg("runner stopped")
			return ctx.Err()
		case fn := <-r.events:
			fn()
		}
	}
}

// Type appends text to the input, as if typed into the control.
func (r *Runner) Type(text string) error {
	return r.do(func() {
		r.screen.UpdateInput(r.screen.Input() + text)
	})
}

// SetInput replaces the input text.
func (r *Runner) SetInput(text string) error {
	return r.do(func() {
		r.screen.UpdateInput(text)
	})
}

// Press delivers a key press. Keys the screen leaves unhandled get the
// multi-line control's behaviour: Shift+Enter inserts a newline.
func (r *Runner) Press(k Key) error {
	return r.do(func() {
		task, scheduled, handled := r.screen.OnKey(k)
		if !handled {
			if k.Name == KeyEnter && k.Shift {
				r.screen.UpdateInput(r.screen.Input() + "\n")
			}
			return
		}
		if scheduled {
			r.appended(r.lastMessage())
			r.schedule(task)
		}
	})
}

// Submit replaces the input with text and presses Enter.
func (r *Runner) Submit(text string) error {
	if err := r.SetInput(text); err != nil {
		return err
	}
	return r.Press(Enter)
}

// Snapshot returns a copy of the conversation taken on the loop goroutine.
func (r *Runner) Snapshot() ([]Message, error) {
	var msgs []Message
	err := r.do(func() {
		msgs = r.screen.Messages()
	})
	return msgs, err
}

// Drain blocks until every scheduled reply has been delivered.
func (r *Runner) Drain(ctx context.Context) error {
	idle := make(chan struct{})
	err := r.do(func() {
		if r.screen.Pending() == 0 {
			close(idle)
			return
		}
		r.waiters = append(r.waiters, idle)
	})
	if err != nil {
		return err
	}

	select {
	case <-idle:
		return nil
	case <-r.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// schedule queues t and arms a timer for it. A firing timer delivers the
// earliest queued task rather than its own, so replies that fall due
// together keep their scheduling order even when timers race.
func (r *Runner) schedule(t Task) {
	r.queue.Push(t)
	r.after(t.Delay, func() {
		// Drop the reply if the loop has already exited.
		_ = r.post(r.deliverNext)
	})
}

func (r *Runner) deliverNext() {
	t, ok := r.queue.Pop()
	if !ok {
		return
	}
	r.appended(r.screen.Deliver(t))
	if r.screen.Pending() == 0 {
		for _, w := range r.waiters {
			close(w)
		}
		r.waiters = nil
	}
}

func (r *Runner) appended(m Message) {
	if r.onAppend != nil {
		r.onAppend(m)
	}
}

func (r *Runner) lastMessage() Message {
	msgs := r.screen.messages
	return msgs[len(msgs)-1]
}

func (r *Runner) post(fn func()) error {
	select {
	case r.events <- fn:
		return nil
	case <-r.done:
		return ErrStopped
	}
}

// do runs fn on the loop and waits for it to finish.
func (r *Runner) do(fn func()) error {
	finished := make(chan struct{})
	if err := r.post(func() {
		fn()
		close(finished)
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-r.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrStopped
		}
	}
}
