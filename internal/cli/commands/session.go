package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/conduit-lang/drills/internal/cli/config"
	"github.com/conduit-lang/drills/internal/cli/ui"
	"github.com/conduit-lang/drills/internal/logging"
	"github.com/conduit-lang/drills/internal/registry"
)

// session holds the resolved configuration of one command invocation
type session struct {
	format  string
	noColor bool
	env     *registry.Env
	logger  *zap.Logger
}

// newSession loads the config file and applies the global flags on top of it.
// Configuration problems are reported as an error block on stderr.
func newSession(cmd *cobra.Command) (*session, error) {
	s, err := resolveSession()
	if err != nil {
		ui.ConfigError(err, noColor).Write(cmd.ErrOrStderr())
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if s.noColor {
		color.NoColor = true
	}
	return s, nil
}

func resolveSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	tag := cfg.Language()
	if locale != "" {
		tag, err = language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("--locale must be a BCP 47 language tag, got %q", locale)
		}
	}

	format := cfg.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("--format must be one of table, json, yaml, got %q", format)
	}

	runSeed := cfg.Seed
	if seed != 0 {
		runSeed = seed
	}

	logger, err := logging.New(verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	env := registry.NewEnv(runSeed, tag)
	env.RandomBound = cfg.RandomBound

	s := &session{
		format:  format,
		noColor: noColor || cfg.Output.NoColor,
		env:     env,
		logger:  logger,
	}
	s.logConfiguration(cfg.File)
	return s, nil
}

// logConfiguration records the resolved settings; file is empty when only defaults apply
func (s *session) logConfiguration(file string) {
	if file == "" {
		file = "(defaults)"
	}
	s.logger.Debug("configuration loaded",
		zap.String("file", file),
		zap.String("locale", s.env.Locale.String()),
		zap.String("format", s.format),
		zap.Int("random_bound", s.env.RandomBound),
	)
}

// encode writes v as indented JSON or YAML
func (s *session) encode(w io.Writer, v any) error {
	if s.format == config.FormatYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// renderValue formats a drill result for a table cell: null for no value,
// strings as is and everything else as compact JSON.
func renderValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// renderArgs quotes each argument the way a shell user would type it
func renderArgs(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("%q", arg)
	}
	return strings.Join(parts, " ")
}
