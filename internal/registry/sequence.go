package registry

import (
	"github.com/conduit-lang/drills/pkg/sequence"
)

// valuesFunc adapts a drill over one mixed-value list.
func valuesFunc(op string, fn func([]any) []any) Invoker {
	return func(env *Env, args []string) (any, error) {
		if err := checkArity(op, args, 1, 1); err != nil {
			return nil, err
		}
		return fn(parseValues(args[0])), nil
	}
}

// pairFunc adapts a drill over two int lists.
func pairFunc(op string, fn func(a, b []int) any) Invoker {
	return func(env *Env, args []string) (any, error) {
		if err := checkArity(op, args, 2, 2); err != nil {
			return nil, err
		}
		a, err := parseInts(op, args[0])
		if err != nil {
			return nil, err
		}
		b, err := parseInts(op, args[1])
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

// nestedFunc adapts a drill over a list of int lists.
func nestedFunc(op string, fn func([][]int) any) Invoker {
	return func(env *Env, args []string) (any, error) {
		if err := checkArity(op, args, 1, 1); err != nil {
			return nil, err
		}
		nested, err := parseNested(op, args[0])
		if err != nil {
			return nil, err
		}
		return fn(nested), nil
	}
}

// optional is the rendering of a (value, ok) result; a false ok renders as null.
func optional[T any](v T, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

var sequenceFunctions = []FunctionDef{
	{
		Name:        "dedupe",
		Signature:   "dedupe(values: any[]) -> any[]",
		Description: "Removes duplicates, keeping first occurrences (2 and '2' differ)",
		Example:     []string{"'1','2',a,abd,'2',2,a"},
		Invoke:      valuesFunc("Sequence.dedupe", sequence.Dedupe[any]),
	},
	{
		Name:        "dedupe_adjacent",
		Signature:   "dedupe_adjacent(values: any[]) -> any[]",
		Description: "Collapses runs of equal neighbours into one element",
		Example:     []string{"1,2,2,3,3,3,4,4,5,2,2"},
		Invoke:      valuesFunc("Sequence.dedupe_adjacent", sequence.DedupeAdjacent[any]),
	},
	{
		Name:        "intersect",
		Signature:   "intersect(a: int[], b: int[]) -> int[]",
		Description: "Elements of a also found in b, keeping duplicates from a",
		Example:     []string{"1,2,2,3", "2,3,3,4"},
		Invoke: pairFunc("Sequence.intersect", func(a, b []int) any {
			return sequence.Intersect(a, b)
		}),
	},
	{
		Name:        "intersect_unique",
		Signature:   "intersect_unique(a: int[], b: int[]) -> int[]",
		Description: "Elements of a also found in b, without duplicates",
		Example:     []string{"1,2,2,3", "2,3,3,4"},
		Invoke: pairFunc("Sequence.intersect_unique", func(a, b []int) any {
			return sequence.IntersectUnique(a, b)
		}),
	},
	{
		Name:        "flatten",
		Signature:   "flatten(nested: int[][]) -> int[]",
		Description: "Concatenates the inner lists (one level only)",
		Example:     []string{"1,2,3;4,5,6;7,8,9"},
		Invoke: nestedFunc("Sequence.flatten", func(nested [][]int) any {
			return sequence.FlattenOneLevel(nested)
		}),
	},
	{
		Name:        "duplicate_elements",
		Signature:   "duplicate_elements(values: any[]) -> any[]",
		Description: "Repeats every element twice in a row",
		Example:     []string{"'1',2,a,'34'"},
		Invoke:      valuesFunc("Sequence.duplicate_elements", sequence.DuplicateElements[any]),
	},
	{
		Name:        "sort_subsequences",
		Signature:   "sort_subsequences(nested: int[][]) -> int[][]",
		Description: "Sorts every inner list ascending, keeping the outer order",
		Example:     []string{"2,1,4,3,5;3,5,2,4,1;4,3,1,5,2"},
		Invoke: nestedFunc("Sequence.sort_subsequences", func(nested [][]int) any {
			return sequence.SortSubsequences(nested)
		}),
	},
	{
		Name:        "truncate_to_shorter",
		Signature:   "truncate_to_shorter(a: int[], b: int[]) -> [int[], int[]]",
		Description: "Cuts both lists from the end to the shorter length",
		Example:     []string{"1,2,3", "1,2,3,4,5"},
		Invoke: pairFunc("Sequence.truncate_to_shorter", func(a, b []int) any {
			ta, tb := sequence.TruncateToShorterLength(a, b)
			return [][]int{ta, tb}
		}),
	},
	{
		Name:        "min_max",
		Signature:   "min_max(ns: int[]) -> {min, max}",
		Description: "Finds the smallest and largest number (empty input is an error)",
		Example:     []string{"3,4,45,6,1,343,38,86,9,-1"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Sequence.min_max"
			if err := checkArity(op, args, 1, 1); err != nil {
				return nil, err
			}
			ns, err := parseInts(op, args[0])
			if err != nil {
				return nil, err
			}
			return sequence.MinMax(ns)
		},
	},
	{
		Name:        "second_largest",
		Signature:   "second_largest(ns: int[]) -> int?",
		Description: "Second largest distinct number, or null with fewer than two",
		Example:     []string{"1,3,2,6,8,6,11"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Sequence.second_largest"
			if err := checkArity(op, args, 1, 1); err != nil {
				return nil, err
			}
			ns, err := parseInts(op, args[0])
			if err != nil {
				return nil, err
			}
			v, ok := sequence.SecondLargestDistinct(ns)
			return optional(v, ok), nil
		},
	},
	{
		Name:        "range",
		Signature:   "range(min: int, max: int) -> int[]",
		Description: "All integers from min to max inclusive",
		Example:     []string{"2", "12"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Sequence.range"
			if err := checkArity(op, args, 2, 2); err != nil {
				return nil, err
			}
			lo, err := parseInt(op, args[0])
			if err != nil {
				return nil, err
			}
			hi, err := parseInt(op, args[1])
			if err != nil {
				return nil, err
			}
			return sequence.RangeInclusive(lo, hi)
		},
	},
	{
		Name:        "to_mapping",
		Signature:   "to_mapping(records: id:name[]) -> {id: record}",
		Description: "Indexes records by id; a later duplicate id wins",
		Example:     []string{"1:Alice,2:Bob,3:Charlie"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Sequence.to_mapping"
			if err := checkArity(op, args, 1, 1); err != nil {
				return nil, err
			}
			records, err := parseRecords(op, args[0])
			if err != nil {
				return nil, err
			}
			return sequence.ToMappingByKey(records, func(r Record) int { return r.ID }), nil
		},
	},
	{
		Name:        "remove_empty_strings",
		Signature:   "remove_empty_strings(values: any[]) -> any[]",
		Description: "Drops every empty string element",
		Example:     []string{"1,'',2,3,'',5"},
		Invoke:      valuesFunc("Sequence.remove_empty_strings", sequence.RemoveEmptyStrings),
	},
	{
		Name:        "next_cyclic",
		Signature:   "next_cyclic(values: any[], x: any) -> any?",
		Description: "Element following x, wrapping from the last to the first",
		Example:     []string{"1,2,3,4,5", "5"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Sequence.next_cyclic"
			if err := checkArity(op, args, 2, 2); err != nil {
				return nil, err
			}
			x := parseValues(args[1])
			if len(x) != 1 {
				return nil, invalidSingleValue(op, args[1])
			}
			next, ok := sequence.NextCyclic(parseValues(args[0]), x[0])
			return optional(next, ok), nil
		},
	},
	{
		Name:        "random_element",
		Signature:   "random_element(values: any[]) -> any",
		Description: "Picks a uniformly random element (empty input is an error)",
		Example:     []string{"1,2,3,4,5"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Sequence.random_element"
			if err := checkArity(op, args, 1, 1); err != nil {
				return nil, err
			}
			return sequence.RandomElement(parseValues(args[0]), env.Source)
		},
	},
	{
		Name:        "no_repeat_pick",
		Signature:   "no_repeat_pick(values: any[], count: int) -> any[]",
		Description: "Picks count random elements, never the same value twice in a row",
		Example:     []string{"1,2,3,4,5", "8"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Sequence.no_repeat_pick"
			if err := checkArity(op, args, 2, 2); err != nil {
				return nil, err
			}
			count, err := parseInt(op, args[1])
			if err != nil {
				return nil, err
			}
			if count < 0 {
				return nil, invalidCount(op, count)
			}
			picker, err := sequence.NewNoRepeatPicker(parseValues(args[0]), env.Source)
			if err != nil {
				return nil, err
			}
			result := make([]any, count)
			for i := range result {
				result[i] = picker.Next()
			}
			return result, nil
		},
	},
}
