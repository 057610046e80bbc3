// Package output provides styled terminal output for the converse CLI.
//
// A Renderer adapts to its environment: styled text on a terminal, plain
// markdown when piped, and machine-readable JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects the output format.
type Mode string

// Supported output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Styles holds the lipgloss styles used for terminal rendering.
type Styles struct {
	Header1       lipgloss.Style
	Header2       lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Success       lipgloss.Style
	Warning       lipgloss.Style
	Error         lipgloss.Style
	Info          lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:          r.NewStyle().Bold(true),
		Muted:         r.NewStyle().Foreground(lipgloss.Color("8")),
		Success:       r.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:       r.NewStyle().Foreground(lipgloss.Color("11")),
		Error:         r.NewStyle().Foreground(lipgloss.Color("9")),
		Info:          r.NewStyle().Foreground(lipgloss.Color("12")),
		StatusSuccess: r.NewStyle().Foreground(lipgloss.Color("10")).SetString("✓"),
		StatusFailed:  r.NewStyle().Foreground(lipgloss.Color("9")).SetString("✗"),
	}
}

// Renderer writes human-readable output to an out/err writer pair.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer for the given writers and mode.
// ModeAuto resolves to text when out is a terminal and markdown otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}

	lr := lipgloss.NewRenderer(out)
	if resolveMode(out, mode) != ModeText {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: newStyles(lr),
	}
}

func resolveMode(out io.Writer, mode Mode) Mode {
	if mode != ModeAuto {
		return mode
	}
	if f, ok := out.(*os.File); ok {
		if termenv.NewOutput(f).Profile != termenv.Ascii {
			return ModeText
		}
	}
	return ModeMarkdown
}

// EffectiveMode returns the mode after auto-detection.
func (r *Renderer) EffectiveMode() Mode {
	return resolveMode(r.out, r.mode)
}

// Writer returns the underlying output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Styles returns the styles used for terminal rendering.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Println writes a line to the output writer.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Header writes a section header at the given level.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		prefix := "#"
		for i := 1; i < level; i++ {
			prefix += "#"
		}
		_, _ = fmt.Fprintf(r.out, "%s %s\n", prefix, text)
		return
	}
	style := r.styles.Header1
	if level > 1 {
		style = r.styles.Header2
	}
	_, _ = fmt.Fprintln(r.out, style.Render(text))
}

// Success writes a green success line.
func (r *Renderer) Success(text string) {
	_, _ = fmt.Fprintln(r.out, r.styles.Success.Render(text))
}

// Warning writes a yellow warning line.
func (r *Renderer) Warning(text string) {
	_, _ = fmt.Fprintln(r.out, r.styles.Warning.Render(text))
}

// Error writes a red error line to the error writer.
func (r *Renderer) Error(text string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render(text))
}

// StatusLine writes a name with a pass/fail marker and an optional detail.
func (r *Renderer) StatusLine(name, status, detail string) {
	icon := r.styles.StatusSuccess.String()
	switch status {
	case "warn":
		icon = r.styles.Warning.Render("!")
	case "error", "failed":
		icon = r.styles.StatusFailed.String()
	}
	line := fmt.Sprintf("%s %s", icon, name)
	if detail != "" {
		line += " " + r.styles.Muted.Render(detail)
	}
	_, _ = fmt.Fprintln(r.out, line)
}

// JSON writes v as indented JSON to the output writer.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
