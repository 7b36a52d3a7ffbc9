package commands

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/drills/internal/cli/config"
	"github.com/conduit-lang/drills/internal/cli/ui"
	"github.com/conduit-lang/drills/internal/logging"
	"github.com/conduit-lang/drills/internal/registry"
)

var interactive bool

// askNamespace prompts for a namespace; replaced in tests
var askNamespace = func(namespaces []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message: "Select a namespace:",
		Options: namespaces,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// DemoEntry is one replayed sample
type DemoEntry struct {
	Function string   `json:"function" yaml:"function"`
	Args     []string `json:"args" yaml:"args"`
	Result   any      `json:"result" yaml:"result"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDemoCommand creates the demo command
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [namespace]",
		Short: "Replay the sample input of every drill",
		Long: `Run every drill with its sample input and print the results.

Random drills use --seed (or the seed config key) so a demo can be replayed.`,
		Example: `  # Replay every sample
  drills demo

  # Only text drills, as JSON
  drills demo Text --format json

  # Pick a namespace from a menu
  drills demo --interactive`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeNamespaces,
		RunE:              runDemoCommand,
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the namespace interactively")

	return cmd
}

// runDemoCommand executes the 'demo [namespace]' command
func runDemoCommand(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	namespaces := registry.Namespaces()
	switch {
	case len(args) > 0:
		namespace, ok := resolveNamespace(args[0])
		if !ok {
			ui.NamespaceNotFound(args[0], registry.Namespaces(), s.noColor).Write(cmd.ErrOrStderr())
			return fmt.Errorf("namespace not found: %s", args[0])
		}
		namespaces = []string{namespace}
	case interactive:
		selected, err := askNamespace(registry.Namespaces())
		if err != nil {
			return err
		}
		namespaces = []string{selected}
	}

	entries := make(map[string][]DemoEntry, len(namespaces))
	var all []DemoEntry
	for _, namespace := range namespaces {
		for _, fn := range registry.Functions(namespace) {
			entry := replay(s, namespace, fn)
			entries[namespace] = append(entries[namespace], entry)
			all = append(all, entry)
		}
	}

	writer := cmd.OutOrStdout()
	if s.format != config.FormatTable {
		return s.encode(writer, all)
	}
	formatDemoAsTable(namespaces, entries, s.noColor, writer)
	return nil
}

// replay invokes a drill with its sample input
func replay(s *session, namespace string, fn registry.FunctionDef) DemoEntry {
	qualified := registry.Qualified(namespace, fn.Name)
	entry := DemoEntry{Function: qualified, Args: fn.Example}

	inv := logging.StartInvocation(s.logger, qualified, fn.Example)
	result, err := fn.Invoke(s.env, fn.Example)
	inv.Finish(err)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	entry.Result = result
	return entry
}

func formatDemoAsTable(namespaces []string, entries map[string][]DemoEntry, noColor bool, writer io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold)

	for i, namespace := range namespaces {
		cyan.Fprintf(writer, "%s\n", namespace)

		table := ui.NewTable(writer, noColor, "Function", "Input", "Result")
		for _, entry := range entries[namespace] {
			result := renderValue(entry.Result)
			if entry.Error != "" {
				result = "error: " + entry.Error
			}
			table.AddRow(entry.Function, renderArgs(entry.Args), result)
		}
		table.Render()

		if i < len(namespaces)-1 {
			fmt.Fprintln(writer)
		}
	}
}
