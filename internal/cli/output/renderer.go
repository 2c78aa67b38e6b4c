// Package output provides rendering utilities for CLI commands with
// support for text, JSON, and YAML output modes and terminal styling.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode controls how command results are rendered.
type Mode string

const (
	// ModeAuto selects text output, styled when stdout is a terminal.
	ModeAuto Mode = "auto"
	// ModeText forces plain text output.
	ModeText Mode = "text"
	// ModeJSON renders results as JSON.
	ModeJSON Mode = "json"
	// ModeYAML renders results as YAML.
	ModeYAML Mode = "yaml"
)

// Valid reports whether m is a recognized output mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuto, ModeText, ModeJSON, ModeYAML:
		return true
	}
	return false
}

// Renderer writes command output to the configured streams, applying
// terminal styles only when the destination is an interactive terminal.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting terminal capability from out.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, detectTTY(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal flag.
// Used by tests to force styled or plain output.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if !mode.Valid() {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: newStyles(isTTY && colorCapable()),
	}
}

func detectTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorCapable honors NO_COLOR and dumb terminals.
func colorCapable() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

// EffectiveMode resolves ModeAuto to the concrete mode in effect.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// IsTTY reports whether output goes to an interactive terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Styles returns the style set in effect for this renderer.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the primary output stream.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error output stream.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the primary output stream.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Printf writes formatted output to the primary output stream.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Errorln writes a line to the error output stream.
func (r *Renderer) Errorln(args ...any) {
	fmt.Fprintln(r.errOut, args...)
}

// JSON encodes v as indented JSON to the primary output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML encodes v as YAML to the primary output stream.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
