// Package registry provides a static catalog of every drill, organized by namespace.
// The catalog drives the CLI: listing, argument parsing, invocation and the sample
// inputs replayed by the demo command.
package registry

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/conduit-lang/drills/pkg/calendar"
	"github.com/conduit-lang/drills/pkg/random"
)

// Env carries the non-deterministic inputs of the drills
type Env struct {
	Source      random.Source
	Clock       calendar.Clock
	Locale      language.Tag
	RandomBound int
}

// DefaultRandomBound is the exclusive bound used by Numeric.no_repeat_random when none is given
const DefaultRandomBound = 100

// NewEnv creates an environment with a seeded source and the system clock.
// A zero seed selects a time-based seed.
func NewEnv(seed uint64, locale language.Tag) *Env {
	return &Env{
		Source:      random.New(seed),
		Clock:       calendar.SystemClock{},
		Locale:      locale,
		RandomBound: DefaultRandomBound,
	}
}

// Invoker parses textual arguments and calls the drill
type Invoker func(env *Env, args []string) (any, error)

// FunctionDef represents one drill in the catalog
type FunctionDef struct {
	Name        string   `json:"name" yaml:"name"`               // Function name (without namespace)
	Signature   string   `json:"signature" yaml:"signature"`     // Full signature: name(params) -> result
	Description string   `json:"description" yaml:"description"` // One-line description
	Example     []string `json:"example" yaml:"example"`         // Sample arguments replayed by `drills demo`
	Invoke      Invoker  `json:"-" yaml:"-"`
}

// Qualified returns "Namespace.name"
func Qualified(namespace, name string) string {
	return namespace + "." + name
}

// Namespaces returns a sorted list of all available namespaces
func Namespaces() []string {
	namespaces := make([]string, 0, len(Registry))
	for namespace := range Registry {
		namespaces = append(namespaces, namespace)
	}
	sort.Strings(namespaces)
	return namespaces
}

// Functions returns all functions for a given namespace
// Returns nil if the namespace doesn't exist
func Functions(namespace string) []FunctionDef {
	return Registry[namespace]
}

// Lookup resolves "Namespace.name". The namespace match ignores case.
func Lookup(qualified string) (FunctionDef, string, bool) {
	namespace, name, found := strings.Cut(qualified, ".")
	if !found {
		return FunctionDef{}, "", false
	}
	for ns, funcs := range Registry {
		if !strings.EqualFold(ns, namespace) {
			continue
		}
		for _, fn := range funcs {
			if fn.Name == name {
				return fn, ns, true
			}
		}
	}
	return FunctionDef{}, "", false
}

// QualifiedNames returns every "Namespace.name" in sorted order
func QualifiedNames() []string {
	var names []string
	for _, ns := range Namespaces() {
		for _, fn := range Registry[ns] {
			names = append(names, Qualified(ns, fn.Name))
		}
	}
	return names
}

// TotalFunctionCount returns the total number of functions across all namespaces
func TotalFunctionCount() int {
	total := 0
	for _, funcs := range Registry {
		total += len(funcs)
	}
	return total
}
