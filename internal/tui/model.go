package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/diogo/chatscreen/internal/chat"
	"github.com/diogo/chatscreen/internal/render"
)

// Message types for the TUI
type (
	// replyDueMsg arrives when a scheduled reply's delay has elapsed.
	replyDueMsg struct {
		task chat.Task
	}
	copiedMsg struct {
		err error
	}
)

// Options configures the chat screen.
type Options struct {
	Title           string
	Screen          *chat.Screen
	Render          render.Options
	Palette         render.Palette
	CopyToClipboard bool
	Logger          zerolog.Logger
}

// Model is the bubbletea model of the chat screen. Conversation state lives
// in the chat.Screen; bubbletea's update loop is its only writer.
type Model struct {
	screen     *chat.Screen
	title      string
	renderOpts render.Options
	styles     styles
	copyOn     bool
	logger     zerolog.Logger

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	ready     bool
	notice    string
	noticeErr bool

	// schedule turns a reply task into a command that reports back when due
	schedule func(chat.Task) tea.Cmd
	copy     func(string) error

	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(opts Options) Model {
	if opts.Screen == nil {
		opts.Screen = chat.NewScreen()
	}
	if opts.Title == "" {
		opts.Title = "Chat"
	}
	if opts.Palette.Name == "" {
		opts.Palette = render.PaletteOrDefault("")
	}
	if opts.Render.Style == "" {
		opts.Render = render.DefaultOptions()
	}
	st := newStyles(opts.Palette)

	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	// The input holds whatever is typed or pasted, untruncated
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	// Enter submits; these insert a newline instead. Most terminals cannot
	// report shift+enter, so alt+enter and ctrl+j stand in for it.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("shift+enter", "alt+enter", "ctrl+j"))
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = st.textarea
	ta.FocusedStyle.Placeholder = st.hint
	ta.BlurredStyle = ta.FocusedStyle
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = st.loading

	return Model{
		screen:     opts.Screen,
		title:      opts.Title,
		renderOpts: opts.Render,
		styles:     st,
		copyOn:     opts.CopyToClipboard,
		logger:     opts.Logger,
		textarea:   ta,
		spinner:    s,
		schedule:   tickAfter,
		copy:       clipboard.WriteAll,
	}
}

// tickAfter reports the task back to Update once its delay has elapsed.
func tickAfter(t chat.Task) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return replyDueMsg{task: t}
	})
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// toKey maps terminal key names onto the screen's key model.
func toKey(msg tea.KeyMsg) (chat.Key, bool) {
	switch msg.String() {
	case "enter":
		return chat.Enter, true
	case "shift+enter", "alt+enter", "ctrl+j":
		return chat.ShiftEnter, true
	}
	return chat.Key{}, false
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 2 // Status bar and notice line
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}
		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - 4)
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+y":
			return m, m.copyLastReply()

		case "pgup", "pgdown":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if k, ok := toKey(msg); ok {
			m.screen.UpdateInput(m.textarea.Value())
			task, scheduled, handled := m.screen.OnKey(k)
			if handled {
				if scheduled {
					m.textarea.Reset()
					m.notice = ""
					m.updateViewport()
					m.viewport.GotoBottom()
					cmds = append(cmds, m.schedule(task), m.spinner.Tick)
				}
				return m, tea.Batch(cmds...)
			}
		}

		m.textarea, cmd = m.textarea.Update(msg)
		m.screen.UpdateInput(m.textarea.Value())
		return m, cmd

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case replyDueMsg:
		m.screen.Deliver(msg.task)
		m.updateViewport()
		m.viewport.GotoBottom()

	case copiedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Copy failed: %v", msg.err)
			m.noticeErr = true
			m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
		} else {
			m.notice = "Reply copied to clipboard"
			m.noticeErr = false
		}

	case spinner.TickMsg:
		if m.screen.Pending() > 0 {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// copyLastReply copies the raw markdown of the newest reply.
func (m *Model) copyLastReply() tea.Cmd {
	if !m.copyOn {
		m.notice = "Clipboard copy is disabled"
		m.noticeErr = false
		return nil
	}
	reply, ok := m.screen.LastReply()
	if !ok {
		m.notice = "No reply to copy yet"
		m.noticeErr = false
		return nil
	}
	write := m.copy
	return func() tea.Msg {
		return copiedMsg{err: write(reply.Body)}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return m.styles.loading.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	headerParts := []string{
		m.styles.title.Render("✦ " + m.title),
	}
	if n := m.screen.Pending(); n > 0 {
		label := "replying"
		if n > 1 {
			label = fmt.Sprintf("replying (%d)", n)
		}
		headerParts = append(headerParts,
			m.styles.hint.Render("  •  "),
			m.spinner.View(),
			m.styles.subtitle.Render(" "+label),
		)
	}
	header := m.styles.header.Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Center, headerParts...),
	)
	sections = append(sections, header)

	var messagesContent string
	if m.screen.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, m.styles.messagesArea.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	inputContent := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.inputLabel.Render("You"),
		m.textarea.View(),
	)
	sections = append(sections, m.styles.inputPanel.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.notice != "" {
		style := m.styles.notice
		if m.noticeErr {
			style = m.styles.err
		}
		sections = append(sections, style.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		m.styles.welcomeIcon.Width(width).Render("✦"),
		"",
		m.styles.welcomeTitle.Width(width).Render("Welcome to "+m.title),
		"",
		m.styles.welcome.Width(width).Render("Start a conversation by typing a message below"),
		"",
	)

	topPadding := (height - lipgloss.Height(content)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Alt+Enter", "Newline"},
		{"Ctrl+Y", "Copy reply"},
		{"PgUp/PgDn", "Scroll"},
		{"Esc", "Quit"},
	}

	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, m.styles.statusKey.Render(s.key)+m.styles.statusDesc.Render(" "+s.desc))
	}

	return m.styles.statusBar.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6
	opts := m.renderOpts.WithWidth(bubbleWidth - 4)

	for i, msg := range m.screen.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Origin == chat.User {
			label := m.styles.userLabel.Render("● You")
			bubble := m.styles.userBubble.Width(bubbleWidth).Render(render.Body(msg, opts))
			content.WriteString(label + "\n" + bubble)
		} else {
			label := m.styles.systemLabel.Render("✦ " + m.title)
			bubble := m.styles.systemBubble.Width(bubbleWidth).Render(render.Body(msg, opts))
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// Conversation returns the messages shown on the screen.
func (m Model) Conversation() []chat.Message {
	return m.screen.Messages()
}

// RunChat starts the chat TUI and blocks until the user quits. It returns the
// conversation as it stood at exit.
func RunChat(ctx context.Context, opts Options) ([]chat.Message, error) {
	m := NewChatModel(opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		return fm.Conversation(), err
	}
	return m.Conversation(), err
}
