package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The
// terminal maps each value to a colour; RecordingUI and JSON see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green, lossless results
	SeverityWarn                     // yellow, one-way results
	SeverityError                    // red
	SeverityCritical                 // bold
)

// StyledText pairs a plain string with a Severity annotation.
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as just its Text.
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is everything a command needs to talk to the user. Production code
// uses TerminalUI; tests use RecordingUI.
type UI interface {
	// Style returns t coloured according to its Severity, or the plain text
	// when colours are disabled.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)
	// Critical is for output the user must read before relying on it, such
	// as a one-way address derivation.
	Critical(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)

	// KeyValue renders an aligned label/value block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with an optional header row.
	Table(headers []string, rows [][]string)

	// Interpret shows what was understood from the user's input,
	// e.g. "→ ss58 address on kusama (prefix 2)".
	Interpret(value string)

	// Ask reads a line, looping until validate returns nil.
	Ask(validate func(string) error) string

	// Confirm asks a yes/no question.
	Confirm(prompt string, defaultYes bool) bool

	Indent() UI

	// Writer returns a writer that honours the current indentation. JSON
	// output is written here.
	Writer() io.Writer
}
