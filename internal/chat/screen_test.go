package chat

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 8, 5, 10, 30, 0, 0, time.UTC)

// newTestScreen returns a screen and a queue sharing one manual clock.
func newTestScreen(opts ...Option) (*Screen, *Queue) {
	q := NewQueue(epoch)
	n := 0
	base := []Option{
		WithClock(q.Now),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}
	return NewScreen(append(base, opts...)...), q
}

func submit(t *testing.T, s *Screen, q *Queue, text string) {
	t.Helper()
	s.UpdateInput(text)
	task, ok := s.Submit()
	require.True(t, ok, "submit %q should be accepted", text)
	q.Push(task)
}

func origins(msgs []Message) []Origin {
	out := make([]Origin, len(msgs))
	for i, m := range msgs {
		out[i] = m.Origin
	}
	return out
}

func TestNewScreen_Defaults(t *testing.T) {
	s := NewScreen()

	assert.Empty(t, s.Messages())
	assert.Equal(t, "", s.Input())
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, time.Second, s.Delay())
}

func TestSubmit_AppendsUserThenReplyAfterDelay(t *testing.T) {
	s, q := newTestScreen()

	submit(t, s, q, "Hello")

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, User, msgs[0].Origin)
	assert.Equal(t, "Hello", msgs[0].Body)
	assert.Equal(t, epoch, msgs[0].CreatedAt)
	assert.Equal(t, 1, s.Pending())

	assert.Empty(t, q.Run(s, 999*time.Millisecond), "reply must not arrive before the delay")
	assert.Equal(t, 1, s.Len())

	delivered := q.Run(s, time.Millisecond)
	require.Len(t, delivered, 1)

	msgs = s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, System, msgs[1].Origin)
	assert.Equal(t, DefaultReply, msgs[1].Body)
	assert.Equal(t, epoch.Add(time.Second), msgs[1].CreatedAt)
	assert.Equal(t, 0, s.Pending())
}

func TestSubmit_ClearsInput(t *testing.T) {
	s, q := newTestScreen()

	submit(t, s, q, "Hello")
	assert.Equal(t, "", s.Input())
}

func TestSubmit_KeepsUntrimmedBody(t *testing.T) {
	s, q := newTestScreen()

	submit(t, s, q, "  padded\n")
	assert.Equal(t, "  padded\n", s.Messages()[0].Body)
}

func TestSubmit_BlankInputIsNoop(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"newlines and tabs", "\n\t \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, q := newTestScreen()
			s.UpdateInput(tt.input)

			task, ok := s.Submit()
			assert.False(t, ok)
			assert.Equal(t, Task{}, task)
			assert.Empty(t, s.Messages())
			assert.Equal(t, 0, s.Pending())
			assert.Equal(t, tt.input, s.Input(), "blank input is left as typed")
			assert.Empty(t, q.Advance(time.Hour))
		})
	}
}

func TestUpdateInput_Verbatim(t *testing.T) {
	s := NewScreen()

	s.UpdateInput("**not markdown**\n  ")
	assert.Equal(t, "**not markdown**\n  ", s.Input())

	s.UpdateInput("")
	assert.Equal(t, "", s.Input())
}

func TestOnKey(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		key           Key
		wantHandled   bool
		wantScheduled bool
	}{
		{"enter submits", "Hello", Enter, true, true},
		{"enter on blank is handled but not scheduled", "  ", Enter, true, false},
		{"shift enter does not submit", "Hello", ShiftEnter, false, false},
		{"other key ignored", "Hello", Key{Name: "a"}, false, false},
		{"shift other key ignored", "Hello", Key{Name: "Tab", Shift: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScreen()
			s.UpdateInput(tt.input)

			_, scheduled, handled := s.OnKey(tt.key)
			assert.Equal(t, tt.wantHandled, handled)
			assert.Equal(t, tt.wantScheduled, scheduled)

			if tt.wantScheduled {
				assert.Equal(t, 1, s.Len())
				assert.Equal(t, "", s.Input())
			} else {
				assert.Equal(t, 0, s.Len())
				assert.Equal(t, tt.input, s.Input())
			}
		})
	}
}

func TestOnKey_EnterMatchesSubmit(t *testing.T) {
	viaKey, qk := newTestScreen()
	viaSubmit, qs := newTestScreen()

	viaKey.UpdateInput("Hello")
	task, scheduled, _ := viaKey.OnKey(Enter)
	require.True(t, scheduled)
	qk.Push(task)

	submit(t, viaSubmit, qs, "Hello")

	qk.Run(viaKey, time.Second)
	qs.Run(viaSubmit, time.Second)

	assert.Equal(t, viaSubmit.Messages(), viaKey.Messages())
}

func TestSubmitTwice_RepliesFollowInSchedulingOrder(t *testing.T) {
	s, q := newTestScreen()

	submit(t, s, q, "first")
	q.Advance(100 * time.Millisecond)
	submit(t, s, q, "second")
	assert.Equal(t, 2, s.Pending())

	q.Run(s, time.Second)

	msgs := s.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, []Origin{User, User, System, System}, origins(msgs))
	assert.Equal(t, "first", msgs[0].Body)
	assert.Equal(t, "second", msgs[1].Body)
	assert.Equal(t, 0, s.Pending())
}

func TestReplyInterleavesWithLaterSubmission(t *testing.T) {
	s, q := newTestScreen()

	submit(t, s, q, "one")
	q.Run(s, 600*time.Millisecond)
	submit(t, s, q, "two")
	q.Run(s, 400*time.Millisecond)
	submit(t, s, q, "three")
	q.Run(s, time.Second)

	assert.Equal(t, []Origin{User, User, System, User, System, System}, origins(s.Messages()))
}

func TestWithReplyAndDelay(t *testing.T) {
	s, q := newTestScreen(WithReply("_ok_"), WithDelay(50*time.Millisecond))

	submit(t, s, q, "ping")
	assert.Empty(t, q.Run(s, 49*time.Millisecond))
	delivered := q.Run(s, time.Millisecond)

	require.Len(t, delivered, 1)
	assert.Equal(t, "_ok_", delivered[0].Body)
}

func TestMessages_ReturnsCopy(t *testing.T) {
	s, q := newTestScreen()
	submit(t, s, q, "Hello")

	msgs := s.Messages()
	msgs[0].Body = "tampered"

	assert.Equal(t, "Hello", s.Messages()[0].Body)
}

func TestLastReply(t *testing.T) {
	s, q := newTestScreen()

	_, ok := s.LastReply()
	assert.False(t, ok)

	submit(t, s, q, "Hello")
	_, ok = s.LastReply()
	assert.False(t, ok)

	q.Run(s, time.Second)
	reply, ok := s.LastReply()
	require.True(t, ok)
	assert.Equal(t, DefaultReply, reply.Body)
}

func TestMessageIDsAreUnique(t *testing.T) {
	s := NewScreen()
	q := NewQueue(time.Now())

	for i := 0; i < 5; i++ {
		s.UpdateInput("hi")
		task, _ := s.Submit()
		q.Push(task)
	}
	q.Run(s, s.Delay()+time.Hour)

	seen := map[string]bool{}
	for _, m := range s.Messages() {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
	assert.Len(t, seen, 10)
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, "user", User.String())
	assert.Equal(t, "system", System.String())
	assert.Equal(t, "unknown", Origin(9).String())

	text, err := System.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "system", string(text))

	assert.False(t, Message{Origin: User}.IsMarkdown())
	assert.True(t, Message{Origin: System}.IsMarkdown())
}
