package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry records a single UI method call for test assertions.
type Entry struct {
	Method string
	Value  string
}

// sharedState is shared by a RecordingUI and its Indent children so nested
// scopes advance the same input cursor.
type sharedState struct {
	entries []Entry
	inputs  []string
	nextIdx int
	buf     *bytes.Buffer
}

// RecordingUI implements UI for tests. Output is captured as entries;
// Ask and Confirm are answered from scripted inputs and panic when the
// script runs out.
type RecordingUI struct {
	shared      *sharedState
	indentLevel int
}

func NewRecordingUI(scriptedInputs ...string) *RecordingUI {
	return &RecordingUI{
		shared: &sharedState{
			inputs: scriptedInputs,
			buf:    &bytes.Buffer{},
		},
	}
}

func (r *RecordingUI) record(method, value string) {
	r.shared.entries = append(r.shared.entries, Entry{Method: method, Value: value})
}

func (r *RecordingUI) nextInput(caller string) string {
	if r.shared.nextIdx >= len(r.shared.inputs) {
		panic(fmt.Sprintf(
			"RecordingUI: no scripted input left for %s (consumed %d so far)",
			caller, r.shared.nextIdx,
		))
	}
	input := r.shared.inputs[r.shared.nextIdx]
	r.shared.nextIdx++
	return input
}

func (r *RecordingUI) Style(t StyledText) string {
	return t.Text
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.record("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

func (r *RecordingUI) Interpret(value string) {
	r.record("Interpret", value)
}

// KeyValue records each row as "label: value".
func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+": "+row[1])
	}
}

// Table records each row with cells joined by " | ".
func (r *RecordingUI) Table(headers []string, rows [][]string) {
	if len(headers) > 0 {
		r.record("TableHeader", strings.Join(headers, " | "))
	}
	for _, row := range rows {
		r.record("Table", strings.Join(row, " | "))
	}
}

// Ask panics when a scripted input fails validation since there is no
// user to correct it.
func (r *RecordingUI) Ask(validate func(string) error) string {
	input := r.nextInput("Ask")
	r.record("Ask", input)
	if validate != nil {
		if err := validate(input); err != nil {
			panic(fmt.Sprintf("RecordingUI: scripted input %q failed validation in Ask: %s", input, err))
		}
	}
	return input
}

// Confirm accepts "y"/"yes" and "n"/"no"; "" selects defaultYes.
func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	r.record("Confirm", prompt)
	input := strings.ToLower(strings.TrimSpace(r.nextInput("Confirm")))
	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}

func (r *RecordingUI) Indent() UI {
	return &RecordingUI{
		shared:      r.shared,
		indentLevel: r.indentLevel + 1,
	}
}

func (r *RecordingUI) Writer() io.Writer {
	return r.shared.buf
}

// --- Test helpers ---

func (r *RecordingUI) Entries() []Entry {
	return r.shared.entries
}

func (r *RecordingUI) MethodValues(method string) []string {
	var out []string
	for _, e := range r.shared.entries {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}

// HasMessage is a case-insensitive substring match over all entries.
func (r *RecordingUI) HasMessage(substr string) bool {
	lower := strings.ToLower(substr)
	for _, e := range r.shared.entries {
		if strings.Contains(strings.ToLower(e.Value), lower) {
			return true
		}
	}
	return false
}

// Output returns everything written to Writer().
func (r *RecordingUI) Output() string {
	return r.shared.buf.String()
}
