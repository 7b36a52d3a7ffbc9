package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/drills/internal/cli/config"
	"github.com/conduit-lang/drills/internal/cli/ui"
	"github.com/conduit-lang/drills/internal/logging"
	"github.com/conduit-lang/drills/internal/registry"
	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

// RunResult is the machine-readable outcome of a single drill
type RunResult struct {
	Function string   `json:"function" yaml:"function"`
	Args     []string `json:"args" yaml:"args"`
	Result   any      `json:"result" yaml:"result"`
}

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <Namespace.function> [args...]",
		Short: "Run a drill with your own input",
		Long: `Run a single drill and print its result.

Arguments are plain text and parsed per drill:
  • integers:      42
  • lists:         1,2,3
  • nested lists:  1,2;3,4
  • dates:         2025-01-18
  • strings:       quote a list value to keep it a string: '2'

A result with no value prints as null.`,
		Example: `  # Test a number for primality
  drills run Numeric.is_prime 17

  # Intersect two lists
  drills run Sequence.intersect 1,2,2,3 2,3,3,4

  # Negative numbers go after --
  drills run --format json -- Sequence.min_max 3,-1,7`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeFunctionNames,
		RunE:              runRunCommand,
	}

	return cmd
}

// runRunCommand executes the 'run <Namespace.function> [args...]' command
func runRunCommand(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	name := args[0]
	fn, namespace, ok := registry.Lookup(name)
	if !ok {
		suggestions := ui.Suggest(name, registry.QualifiedNames(), nil)
		ui.FunctionNotFound(name, suggestions, s.noColor).Write(cmd.ErrOrStderr())
		return fmt.Errorf("function not found: %s", name)
	}

	qualified := registry.Qualified(namespace, fn.Name)
	inputs := args[1:]

	inv := logging.StartInvocation(s.logger, qualified, inputs)
	result, err := fn.Invoke(s.env, inputs)
	inv.Finish(err)
	if err != nil {
		if errors.Is(err, drillerrors.ErrInvalidArgument) {
			ui.InvalidArgument(qualified, fn.Signature, err, s.noColor).Write(cmd.ErrOrStderr())
		}
		return err
	}

	writer := cmd.OutOrStdout()
	if s.format == config.FormatTable {
		fmt.Fprintln(writer, renderValue(result))
		return nil
	}
	return s.encode(writer, RunResult{Function: qualified, Args: inputs, Result: result})
}
