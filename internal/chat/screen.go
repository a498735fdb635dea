package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultReply is the canned System reply body.
const DefaultReply = "This is a **dummy response** rendered as markdown."

// DefaultDelay is how long a reply waits after the submission that scheduled it.
const DefaultDelay = 1000 * time.Millisecond

// Screen owns the conversation and the input text. It is not safe for
// concurrent use: exactly one goroutine (the bubbletea update loop or a
// Runner) may call its methods.
type Screen struct {
	messages []Message
	input    string
	pending  int

	reply  string
	delay  time.Duration
	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// Option configures a Screen.
type Option func(*Screen)

// WithReply sets the canned reply body.
func WithReply(body string) Option {
	return func(s *Screen) {
		s.reply = body
	}
}

// WithDelay sets the reply delay.
func WithDelay(d time.Duration) Option {
	return func(s *Screen) {
		s.delay = d
	}
}

// WithClock replaces time.Now, used to stamp messages and compute task deadlines.
func WithClock(now func() time.Time) Option {
	return func(s *Screen) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid generator for message and task IDs.
func WithIDGenerator(gen func() string) Option {
	return func(s *Screen) {
		s.newID = gen
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Screen) {
		s.logger = logger
	}
}

// NewScreen creates an empty screen.
func NewScreen(opts ...Option) *Screen {
	s := &Screen{
		reply:  DefaultReply,
		delay:  DefaultDelay,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateInput replaces the input text verbatim.
func (s *Screen) UpdateInput(text string) {
	s.input = text
}

// Submit commits the current input. Input that is blank after trimming is
// ignored and nothing is scheduled. Otherwise the untrimmed input becomes a
// User message, the input is cleared, and the returned Task must be handed
// to Deliver once its delay has elapsed.
func (s *Screen) Submit() (Task, bool) {
	if strings.TrimSpace(s.input) == "" {
		s.logger.Debug().Int("input_len", len(s.input)).Msg("blank input ignored")
		return Task{}, false
	}

	now := s.now()
	msg := Message{
		ID:        s.newID(),
		Origin:    User,
		Body:      s.input,
		CreatedAt: now,
	}
	s.messages = append(s.messages, msg)
	s.input = ""

	task := Task{
		ID:    s.newID(),
		Body:  s.reply,
		Delay: s.delay,
		Due:   now.Add(s.delay),
	}
	s.pending++

	s.logger.Debug().
		Str("message_id", msg.ID).
		Str("task_id", task.ID).
		Dur("delay", task.Delay).
		Int("pending", s.pending).
		Msg("message submitted, reply scheduled")

	return task, true
}

// OnKey handles a key press on the input. Enter without shift submits and is
// reported as handled even when the input is blank, so the caller suppresses
// the control's default action. Every other key is left to the input control
// (Shift+Enter inserts a newline there).
func (s *Screen) OnKey(k Key) (task Task, scheduled bool, handled bool) {
	if k.Name != KeyEnter || k.Shift {
		return Task{}, false, false
	}
	task, scheduled = s.Submit()
	return task, scheduled, true
}

// Deliver appends the System reply for a task whose delay has elapsed.
func (s *Screen) Deliver(t Task) Message {
	msg := Message{
		ID:        s.newID(),
		Origin:    System,
		Body:      t.Body,
		CreatedAt: s.now(),
	}
	s.messages = append(s.messages, msg)
	if s.pending > 0 {
		s.pending--
	}

	s.logger.Debug().
		Str("message_id", msg.ID).
		Str("task_id", t.ID).
		Int("pending", s.pending).
		Msg("reply delivered")

	return msg
}

// Messages returns a copy of the conversation, oldest first.
func (s *Screen) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *Screen) Len() int {
	return len(s.messages)
}

// Input returns the current input text.
func (s *Screen) Input() string {
	return s.input
}

// Pending returns the number of scheduled replies not yet delivered.
func (s *Screen) Pending() int {
	return s.pending
}

// Delay returns the configured reply delay.
func (s *Screen) Delay() time.Duration {
	return s.delay
}

// LastReply returns the most recent System message, if any.
func (s *Screen) LastReply() (Message, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Origin == System {
			return s.messages[i], true
		}
	}
	return Message{}, false
}
