package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Level represents the severity of a message block
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

// Block describes a formatted message block
type Block struct {
	Level       Level
	Title       string   // Upper-cased heading, e.g. "FUNCTION NOT FOUND"
	Subject     string   // Printed after the title as is
	Problem     string   // What went wrong
	Detail      string   // Optional second paragraph
	Suggestions []string // Rendered as "Did you mean: a, b?"
	Hints       []string // Rendered as "→ hint" lines
	NoColor     bool
}

// Format renders a block.
//
// Example output:
//
//	❌ FUNCTION NOT FOUND: Numeric.is_prim
//	   Cannot find function 'Numeric.is_prim'.
//
//	   Did you mean: Numeric.is_prime?
//
//	   → List functions: drills list Numeric
func (b Block) Format() string {
	var sb strings.Builder

	header, body, symbol := b.palette()

	if b.Title != "" {
		heading := strings.ToUpper(b.Title)
		if b.Subject != "" {
			heading += ": " + b.Subject
		}
		header.Fprintf(&sb, "%s %s\n", symbol, heading)
		if b.Problem != "" {
			body.Fprintf(&sb, "   %s\n", b.Problem)
		}
	} else {
		header.Fprintf(&sb, "%s %s\n", symbol, b.Problem)
	}

	if b.Detail != "" {
		sb.WriteString("\n")
		body.Fprintf(&sb, "   %s\n", b.Detail)
	}

	if len(b.Suggestions) > 0 {
		sb.WriteString("\n")
		yellow := b.color(color.FgYellow)
		yellow.Fprintf(&sb, "   Did you mean: %s?\n", strings.Join(b.Suggestions, ", "))
	}

	if len(b.Hints) > 0 {
		sb.WriteString("\n")
		cyan := b.color(color.FgCyan)
		for _, hint := range b.Hints {
			cyan.Fprintf(&sb, "   → %s\n", hint)
		}
	}

	return sb.String()
}

func (b Block) palette() (header, body *color.Color, symbol string) {
	switch b.Level {
	case LevelWarning:
		return b.color(color.FgYellow, color.Bold), b.color(color.FgYellow), "⚠️"
	case LevelInfo:
		return b.color(color.FgCyan, color.Bold), b.color(color.FgCyan), "ℹ️"
	default:
		return b.color(color.FgRed, color.Bold), b.color(color.FgRed), "❌"
	}
}

func (b Block) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if b.NoColor {
		c.DisableColor()
	}
	return c
}

// Write writes the formatted block to w
func (b Block) Write(w io.Writer) {
	fmt.Fprint(w, b.Format())
}

// FunctionNotFound describes an unknown "Namespace.name"
func FunctionNotFound(name string, suggestions []string, noColor bool) Block {
	return Block{
		Title:       "function not found",
		Subject:     name,
		Problem:     fmt.Sprintf("Cannot find function '%s'.", name),
		Suggestions: suggestions,
		Hints: []string{
			"List functions: drills list",
			"Names look like Namespace.function, e.g. Numeric.is_prime",
		},
		NoColor: noColor,
	}
}

// NamespaceNotFound describes an unknown namespace
func NamespaceNotFound(namespace string, available []string, noColor bool) Block {
	return Block{
		Title:       "namespace not found",
		Subject:     namespace,
		Problem:     fmt.Sprintf("Namespace '%s' not found.", namespace),
		Detail:      "Available namespaces: " + strings.Join(available, ", "),
		Suggestions: Suggest(namespace, available, nil),
		NoColor:     noColor,
	}
}

// InvalidArgument describes a rejected drill input
func InvalidArgument(function, signature string, err error, noColor bool) Block {
	return Block{
		Title:   "invalid argument",
		Subject: function,
		Problem: err.Error(),
		Detail:  "Usage: " + signature,
		Hints: []string{
			"Lists are comma separated (1,2,3), nested lists use ';' (1,2;3,4)",
			"Quote a value to keep it a string ('2')",
			"Show samples: drills demo " + namespaceOf(function),
		},
		NoColor: noColor,
	}
}

// ConfigError describes an unusable configuration
func ConfigError(err error, noColor bool) Block {
	return Block{
		Title:   "configuration error",
		Problem: err.Error(),
		Hints: []string{
			"View config: cat drills.yml",
			"Override with environment variables: DRILLS_LOCALE=en",
		},
		NoColor: noColor,
	}
}

// Success formats a success line
func Success(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

func namespaceOf(function string) string {
	ns, _, _ := strings.Cut(function, ".")
	return ns
}
