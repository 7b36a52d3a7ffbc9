package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/drills/internal/cli/config"
	"github.com/conduit-lang/drills/internal/cli/ui"
	"github.com/conduit-lang/drills/internal/registry"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [namespace]",
		Short: "List drills",
		Long: `List every drill organized by namespace.

Each entry shows the drill's signature and a one-line description.
Namespaces are matched without regard to case.`,
		Example: `  # List all drills
  drills list

  # List drills in a specific namespace
  drills list Text

  # Output in JSON format for tooling
  drills list --format json

  # List only Calendar drills as YAML
  drills list calendar --format yaml`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeNamespaces,
		RunE:              runListCommand,
	}

	return cmd
}

// runListCommand executes the 'list [namespace]' command
func runListCommand(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	writer := cmd.OutOrStdout()

	namespaces := registry.Namespaces()
	if len(args) > 0 {
		namespace, ok := resolveNamespace(args[0])
		if !ok {
			ui.NamespaceNotFound(args[0], registry.Namespaces(), s.noColor).Write(cmd.ErrOrStderr())
			return fmt.Errorf("namespace not found: %s", args[0])
		}
		namespaces = []string{namespace}
	}

	if s.format == config.FormatTable {
		formatListAsTable(namespaces, len(args) == 0, writer)
		return nil
	}
	return s.encode(writer, buildListing(namespaces))
}

// resolveNamespace finds the registered spelling of a namespace
func resolveNamespace(name string) (string, bool) {
	for _, ns := range registry.Namespaces() {
		if strings.EqualFold(ns, name) {
			return ns, true
		}
	}
	return "", false
}

// formatListAsTable formats drills as human-readable output
func formatListAsTable(namespaces []string, showHeader bool, writer io.Writer) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	gray := color.New(color.Faint)

	if showHeader {
		bold.Fprintf(writer, "DRILLS (%d total)\n\n", registry.TotalFunctionCount())
		gray.Fprintln(writer, "Run one with: drills run Namespace.function [args...]")
		fmt.Fprintln(writer)
	}

	for i, namespace := range namespaces {
		funcs := registry.Functions(namespace)

		cyan.Fprintf(writer, "%s Functions (%d):\n", namespace, len(funcs))
		for _, fn := range funcs {
			green.Fprintf(writer, "  %s.%s\n", namespace, fn.Signature)
			gray.Fprintf(writer, "    %s\n", fn.Description)
		}

		if i < len(namespaces)-1 {
			fmt.Fprintln(writer)
		}
	}
}

// Listing is the machine-readable form of the catalog
type Listing struct {
	TotalCount int                `json:"total_count" yaml:"total_count"`
	Namespaces []NamespaceListing `json:"namespaces" yaml:"namespaces"`
}

// NamespaceListing is one namespace of a Listing
type NamespaceListing struct {
	Namespace string                 `json:"namespace" yaml:"namespace"`
	Functions []registry.FunctionDef `json:"functions" yaml:"functions"`
}

func buildListing(namespaces []string) Listing {
	output := Listing{Namespaces: []NamespaceListing{}}
	for _, namespace := range namespaces {
		funcs := registry.Functions(namespace)
		output.Namespaces = append(output.Namespaces, NamespaceListing{
			Namespace: namespace,
			Functions: funcs,
		})
		output.TotalCount += len(funcs)
	}
	return output
}
