// Package chat implements the chat screen state: an append-only conversation,
// the current input text, and the deferred canned replies that follow every
// accepted submission.
package chat

import "time"

// Origin tells who authored a message.
type Origin int

const (
	// User messages are typed by the person at the screen. Bodies are literal text.
	User Origin = iota
	// System messages are the simulated counterpart's replies. Bodies are markdown.
	System
)

func (o Origin) String() string {
	switch o {
	case User:
		return "user"
	case System:
		return "system"
	default:
		return "unknown"
	}
}

// MarshalText lets Origin appear as "user"/"system" in JSON and YAML.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Message is one entry of the conversation. Messages are never edited.
type Message struct {
	ID        string    `json:"id" yaml:"id"`
	Origin    Origin    `json:"origin" yaml:"origin"`
	Body      string    `json:"body" yaml:"body"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// IsMarkdown reports whether the body should go through the markdown renderer.
func (m Message) IsMarkdown() bool {
	return m.Origin == System
}

// Key is a key press delivered to the input control.
type Key struct {
	Name  string
	Shift bool
}

// KeyEnter is the name of the Enter key.
const KeyEnter = "Enter"

// Enter is a plain Enter press.
var Enter = Key{Name: KeyEnter}

// ShiftEnter is Enter with the shift modifier held.
var ShiftEnter = Key{Name: KeyEnter, Shift: true}

// Task is a deferred canned reply. It fires once, Delay after it was scheduled.
type Task struct {
	ID    string
	Body  string
	Delay time.Duration
	Due   time.Time
}
