// Package transcript writes the conversation of a finished session to a file.
// Transcripts are output only; chatscreen never reads them back.
package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/diogo/chatscreen/internal/chat"
	apperrors "github.com/diogo/chatscreen/internal/errors"
)

// Format is a transcript encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat accepts a format name or a common file extension.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownFormat, name)
	}
}

// FormatForPath picks a format from a file extension, defaulting to markdown.
func FormatForPath(path string) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return FormatMarkdown
}

// Transcript is the serialized form of a session.
type Transcript struct {
	Title    string         `json:"title" yaml:"title"`
	Exported time.Time      `json:"exported_at" yaml:"exported_at"`
	Count    int            `json:"message_count" yaml:"message_count"`
	Messages []chat.Message `json:"messages" yaml:"messages"`
}

// New builds a transcript for msgs.
func New(title string, msgs []chat.Message, exported time.Time) Transcript {
	return Transcript{
		Title:    title,
		Exported: exported,
		Count:    len(msgs),
		Messages: msgs,
	}
}

// Write encodes t to w.
func Write(w io.Writer, t Transcript, format Format) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(t))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownFormat, format)
	}
}

// WriteFile encodes t into path, creating parent directories.
func WriteFile(path string, t Transcript, format Format) error {
	var buf bytes.Buffer
	if err := Write(&buf, t, format); err != nil {
		return apperrors.NewTranscriptError(path, string(format), err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.NewTranscriptError(path, string(format), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return apperrors.NewTranscriptError(path, string(format), err)
	}
	return nil
}

// Markdown renders t as a markdown document. User bodies are fenced so their
// text is not interpreted when the document is viewed.
func Markdown(t Transcript) string {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(t.Title)
	sb.WriteString("\n\n")
	sb.WriteString("**Exported:** ")
	sb.WriteString(t.Exported.Format("2006-01-02 15:04:05"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("**Messages:** %d\n\n---\n\n", t.Count))

	for i, msg := range t.Messages {
		role := "User"
		if msg.Origin == chat.System {
			role = "System"
		}

		sb.WriteString("## ")
		sb.WriteString(role)
		if !msg.CreatedAt.IsZero() {
			sb.WriteString(" (")
			sb.WriteString(msg.CreatedAt.Format("15:04:05"))
			sb.WriteString(")")
		}
		sb.WriteString("\n\n")

		if msg.Origin == chat.User {
			fence := fenceFor(msg.Body)
			sb.WriteString(fence + "text\n")
			sb.WriteString(strings.TrimSuffix(msg.Body, "\n"))
			sb.WriteString("\n" + fence + "\n")
		} else {
			sb.WriteString(msg.Body)
			sb.WriteString("\n")
		}

		if i < len(t.Messages)-1 {
			sb.WriteString("\n---\n\n")
		}
	}

	return sb.String()
}

// fenceFor returns a backtick fence longer than any run inside body.
func fenceFor(body string) string {
	longest, run := 0, 0
	for _, r := range body {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
