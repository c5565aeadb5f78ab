package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit      = "  "
	sectionWidth    = 50
	promptPrefix    = "> "
	interpretPrefix = "→ "
)

// TerminalUI writes coloured output to out and reads answers from in.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
}

// NewTerminalUI creates a TerminalUI on stdout/stdin. Colours are enabled
// only when stdout is a terminal, so piped output stays clean.
func NewTerminalUI() *TerminalUI {
	return NewTerminalUIWithIO(os.Stdout, os.Stdin, term.IsTerminal(int(os.Stdout.Fd())))
}

func NewTerminalUIWithIO(out io.Writer, in io.Reader, colors bool) *TerminalUI {
	return &TerminalUI{
		out: out,
		in:  bufio.NewReader(in),
		au:  aurora.NewAurora(colors),
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	case SeverityCritical:
		return u.au.Bold(t.Text).String()
	default:
		return t.Text
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.writeLine(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.writeLine(u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.writeLine(u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.writeLine(u.au.Red(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.writeLine(u.au.Bold(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - runewidth.StringWidth(titled)
	if bars < 6 {
		bars = 6
	}
	left := bars / 2
	line := strings.Repeat("=", left) + titled + strings.Repeat("=", bars-left)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), line)
}

func (u *TerminalUI) Interpret(value string) {
	fmt.Fprintf(u.out, "%s%s%s%s\n", u.prefix(), indentUnit, interpretPrefix, u.au.Cyan(value).String())
}

// Ask validation errors are printed in red and the prompt repeats. EOF
// returns whatever was read so far.
func (u *TerminalUI) Ask(validate func(string) error) string {
	for {
		fmt.Fprintf(u.out, "%s%s", u.prefix(), promptPrefix)
		text, err := u.in.ReadString('\n')
		input := strings.TrimRight(text, "\r\n")
		if validate == nil || err != nil {
			return input
		}
		verr := validate(input)
		if verr == nil {
			return input
		}
		u.writeLine(u.au.Red(verr.Error()).String())
	}
}

// Confirm returns defaultYes on an empty answer.
func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	options := "[Y/n]"
	if !defaultYes {
		options = "[y/N]"
	}
	u.Info("%s %s", prompt, options)
	input := strings.ToLower(strings.TrimSpace(u.Ask(func(s string) error {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "y", "yes", "n", "no":
			return nil
		}
		return fmt.Errorf("please enter y or n")
	})))
	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	maxLabel := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > maxLabel {
			maxLabel = w
		}
	}
	p := u.prefix()
	for _, r := range rows {
		pad := strings.Repeat(" ", maxLabel-runewidth.StringWidth(r[0]))
		fmt.Fprintf(u.out, "%s%s%s  %s\n", p, r[0], pad, r[1])
	}
}

// Table sizes columns by visible width so cells carrying ANSI colour from
// Style still line up.
func (u *TerminalUI) Table(headers []string, rows [][]string) {
	ncols := len(headers)
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}
	if ncols == 0 {
		return
	}

	cellWidth := func(s string) int {
		return runewidth.StringWidth(ansi.Strip(s))
	}
	widths := make([]int, ncols)
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	border := func(s string) string { return borderStyle.Render(s) }

	dashes := make([]string, ncols)
	for i, w := range widths {
		dashes[i] = strings.Repeat("─", w+2)
	}
	renderRow := func(cells []string) string {
		parts := make([]string, ncols)
		for i := 0; i < ncols; i++ {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			parts[i] = " " + val + strings.Repeat(" ", widths[i]-cellWidth(val)) + " "
		}
		return border("│") + strings.Join(parts, border("│")) + border("│")
	}

	p := u.prefix()
	fmt.Fprintf(u.out, "%s%s\n", p, border("┌"+strings.Join(dashes, "┬")+"┐"))
	if len(headers) > 0 {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(headers))
		fmt.Fprintf(u.out, "%s%s\n", p, border("├"+strings.Join(dashes, "┼")+"┤"))
	}
	for _, row := range rows {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(row))
	}
	fmt.Fprintf(u.out, "%s%s\n", p, border("└"+strings.Join(dashes, "┴")+"┘"))
}

func (u *TerminalUI) Indent() UI {
	return &TerminalUI{
		indentLevel: u.indentLevel + 1,
		out:         u.out,
		in:          u.in,
		au:          u.au,
	}
}

func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
