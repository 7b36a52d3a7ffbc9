package registry

import (
	"github.com/conduit-lang/drills/pkg/text"
)

// stringFunc adapts a func(string) T drill.
func stringFunc[T any](op string, fn func(string) T) Invoker {
	return func(env *Env, args []string) (any, error) {
		if err := checkArity(op, args, 1, 1); err != nil {
			return nil, err
		}
		return fn(args[0]), nil
	}
}

// lengthFunc adapts a random text drill taking a length.
func lengthFunc[T any](op string, fn func(int, *Env) (T, error)) Invoker {
	return func(env *Env, args []string) (any, error) {
		if err := checkArity(op, args, 1, 1); err != nil {
			return nil, err
		}
		n, err := parseInt(op, args[0])
		if err != nil {
			return nil, err
		}
		return fn(n, env)
	}
}

var textFunctions = []FunctionDef{
	{
		Name:        "kebab_to_snake",
		Signature:   "kebab_to_snake(s: string) -> string",
		Description: "Converts kebab-case to snake_case",
		Example:     []string{"kebab-case"},
		Invoke:      stringFunc("Text.kebab_to_snake", text.KebabToSnake),
	},
	{
		Name:        "snake_to_camel",
		Signature:   "snake_to_camel(s: string) -> string",
		Description: "Converts snake_case to camelCase",
		Example:     []string{"convert_snake_case_to_camel_case"},
		Invoke:      stringFunc("Text.snake_to_camel", text.SnakeToCamel),
	},
	{
		Name:        "camel_to_snake",
		Signature:   "camel_to_snake(s: string) -> string",
		Description: "Converts camelCase to snake_case",
		Example:     []string{"camelCaseExample"},
		Invoke:      stringFunc("Text.camel_to_snake", text.CamelToSnake),
	},
	{
		Name:        "truncate",
		Signature:   "truncate(s: string, max_len: int) -> string",
		Description: "Keeps the first max_len characters (negative max_len is an error)",
		Example:     []string{"Привет, мир!", "5"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Text.truncate"
			if err := checkArity(op, args, 2, 2); err != nil {
				return nil, err
			}
			n, err := parseInt(op, args[1])
			if err != nil {
				return nil, err
			}
			return text.Truncate(args[0], n)
		},
	},
	{
		Name:        "sort_words",
		Signature:   "sort_words(s: string) -> string",
		Description: "Sorts space separated words with the configured locale collation",
		Example:     []string{"яблоко груша банан апельсин ананас"},
		Invoke: func(env *Env, args []string) (any, error) {
			if err := checkArity("Text.sort_words", args, 1, 1); err != nil {
				return nil, err
			}
			return text.SortWordsAlphabetically(args[0], env.Locale), nil
		},
	},
	{
		Name:        "sort_words_codepoint",
		Signature:   "sort_words_codepoint(s: string) -> string",
		Description: "Sorts space separated words by Unicode code point",
		Example:     []string{"banana Apple cherry"},
		Invoke:      stringFunc("Text.sort_words_codepoint", text.SortWordsByCodepoint),
	},
	{
		Name:        "initials",
		Signature:   "initials(s: string) -> string",
		Description: "Upper-cased first letters of every word",
		Example:     []string{"Сделайте функцию, которая параметром"},
		Invoke:      stringFunc("Text.initials", text.Initials),
	},
	{
		Name:        "random_string",
		Signature:   "random_string(length: int) -> string",
		Description: "Random string of lowercase latin letters",
		Example:     []string{"10"},
		Invoke: lengthFunc("Text.random_string", func(n int, env *Env) (string, error) {
			return text.RandomAlphabeticString(n, env.Source)
		}),
	},
	{
		Name:        "random_letters",
		Signature:   "random_letters(length: int) -> string[]",
		Description: "List of random lowercase latin letters",
		Example:     []string{"10"},
		Invoke: lengthFunc("Text.random_letters", func(n int, env *Env) ([]string, error) {
			return text.RandomLetters(n, env.Source)
		}),
	},
	{
		Name:        "is_digit_string",
		Signature:   "is_digit_string(s: string) -> bool",
		Description: "Checks that a string consists of digits only",
		Example:     []string{"465464844"},
		Invoke:      stringFunc("Text.is_digit_string", text.IsDigitString),
	},
	{
		Name:        "is_fraction",
		Signature:   "is_fraction(s: string) -> bool",
		Description: "Checks that a string looks like numerator/denominator",
		Example:     []string{"5/2"},
		Invoke:      stringFunc("Text.is_fraction", text.IsFraction),
	},
}
