package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The
// print layer maps each value to a terminal style; data consumers (JSON,
// tests) see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green, known / found
	SeverityWarn                     // yellow, needs attention
	SeverityError                    // red, unknown / not found
	SeverityCritical                 // bold
)

// StyledText pairs a plain string with a Severity annotation.
//
// It marshals as just the plain Text string so JSON consumers receive no
// ANSI codes. Pass it to [UI.Style] to embed a coloured value in a line:
//
//	u.Info("Invoker: %s", u.Style(ui.StyledText{Text: addr, Severity: ui.SeveritySuccess}))
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// Found styles text green.
func Found(text string) StyledText {
	return StyledText{Text: text, Severity: SeveritySuccess}
}

// Missing styles text red.
func Missing(text string) StyledText {
	return StyledText{Text: text, Severity: SeverityError}
}

// UI is the output surface of the kingmaker CLI.
//
// Production code uses TerminalUI (writes to os.Stdout); tests use
// RecordingUI, which captures every call.
type UI interface {
	// Style returns the text of t coloured according to its Severity, or
	// the plain text when colours are disabled.
	Style(t StyledText) string

	// Info writes a neutral status line.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)

	// Critical writes data the user must review, in bold.
	Critical(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)

	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with a header row.
	Table(headers []string, rows [][]string)

	// Indent returns a child UI one indent level deeper sharing the same
	// writer.
	Indent() UI

	// Writer returns an io.Writer prepending the current indentation to
	// every line, for raw output such as JSON documents.
	Writer() io.Writer
}
