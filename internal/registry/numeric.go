package registry

import (
	"github.com/conduit-lang/drills/pkg/numeric"
)

// intFunc adapts a func(int) T drill that cannot fail.
func intFunc[T any](op string, fn func(int) T) Invoker {
	return func(env *Env, args []string) (any, error) {
		if err := checkArity(op, args, 1, 1); err != nil {
			return nil, err
		}
		n, err := parseInt(op, args[0])
		if err != nil {
			return nil, err
		}
		return fn(n), nil
	}
}

// intFuncErr adapts a func(int) (T, error) drill.
func intFuncErr[T any](op string, fn func(int) (T, error)) Invoker {
	return func(env *Env, args []string) (any, error) {
		if err := checkArity(op, args, 1, 1); err != nil {
			return nil, err
		}
		n, err := parseInt(op, args[0])
		if err != nil {
			return nil, err
		}
		return fn(n)
	}
}

var numericFunctions = []FunctionDef{
	{
		Name:        "digits_ascending",
		Signature:   "digits_ascending(n: int) -> bool",
		Description: "Checks that every digit is strictly greater than the one before it",
		Example:     []string{"12345"},
		Invoke:      intFunc("Numeric.digits_ascending", numeric.DigitsAscending),
	},
	{
		Name:        "digit_sum",
		Signature:   "digit_sum(n: int) -> int",
		Description: "Sums the decimal digits",
		Example:     []string{"1568"},
		Invoke:      intFunc("Numeric.digit_sum", numeric.DigitSum),
	},
	{
		Name:        "strip_zero_digits",
		Signature:   "strip_zero_digits(n: int) -> int",
		Description: "Removes every 0 digit (nothing left yields 0)",
		Example:     []string{"1012600"},
		Invoke:      intFunc("Numeric.strip_zero_digits", numeric.StripZeroDigits),
	},
	{
		Name:        "strip_even_digits",
		Signature:   "strip_even_digits(n: int) -> int",
		Description: "Removes every even digit (nothing left yields 0)",
		Example:     []string{"14567432465"},
		Invoke:      intFunc("Numeric.strip_even_digits", numeric.StripEvenDigits),
	},
	{
		Name:        "all_contain_digit",
		Signature:   "all_contain_digit(ns: int[], d: int) -> bool",
		Description: "Checks that every number contains the digit d",
		Example:     []string{"3,13,23,33,43", "3"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Numeric.all_contain_digit"
			if err := checkArity(op, args, 2, 2); err != nil {
				return nil, err
			}
			ns, err := parseInts(op, args[0])
			if err != nil {
				return nil, err
			}
			d, err := parseInt(op, args[1])
			if err != nil {
				return nil, err
			}
			return numeric.AllContainDigit(ns, d)
		},
	},
	{
		Name:        "divisor_count",
		Signature:   "divisor_count(n: int) -> int",
		Description: "Counts the positive divisors using square root pairing",
		Example:     []string{"1000000000"},
		Invoke:      intFuncErr("Numeric.divisor_count", numeric.DivisorCount),
	},
	{
		Name:        "divisor_sum",
		Signature:   "divisor_sum(n: int) -> int",
		Description: "Sums the positive divisors using square root pairing",
		Example:     []string{"84"},
		Invoke:      intFuncErr("Numeric.divisor_sum", numeric.DivisorSum),
	},
	{
		Name:        "divisor_sum_by_scan",
		Signature:   "divisor_sum_by_scan(n: int) -> int",
		Description: "Sums the positive divisors by testing every candidate up to n",
		Example:     []string{"84"},
		Invoke:      intFuncErr("Numeric.divisor_sum_by_scan", numeric.DivisorSumByScan),
	},
	{
		Name:        "divisors",
		Signature:   "divisors(n: int) -> int[]",
		Description: "Lists the positive divisors in ascending order",
		Example:     []string{"36"},
		Invoke:      intFuncErr("Numeric.divisors", numeric.Divisors),
	},
	{
		Name:        "divisor_table",
		Signature:   "divisor_table(ns: int[]) -> int[][]",
		Description: "Replaces every number with the list of its divisors",
		Example:     []string{"6,12,15"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Numeric.divisor_table"
			if err := checkArity(op, args, 1, 1); err != nil {
				return nil, err
			}
			ns, err := parseInts(op, args[0])
			if err != nil {
				return nil, err
			}
			return numeric.DivisorTable(ns)
		},
	},
	{
		Name:        "is_prime",
		Signature:   "is_prime(n: int) -> bool",
		Description: "Checks primality by trial division",
		Example:     []string{"17"},
		Invoke:      intFunc("Numeric.is_prime", numeric.IsPrime),
	},
	{
		Name:        "no_repeat_random",
		Signature:   "no_repeat_random(count: int, bound: int?) -> int[]",
		Description: "Draws count values from one generator that never repeats the previous value",
		Example:     []string{"10", "3"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Numeric.no_repeat_random"
			if err := checkArity(op, args, 1, 2); err != nil {
				return nil, err
			}
			count, err := parseInt(op, args[0])
			if err != nil {
				return nil, err
			}
			bound := env.RandomBound
			if len(args) == 2 {
				if bound, err = parseInt(op, args[1]); err != nil {
					return nil, err
				}
			}
			if count < 0 {
				return nil, invalidCount(op, count)
			}
			gen, err := numeric.NewNoRepeat(bound, env.Source)
			if err != nil {
				return nil, err
			}
			result := make([]int, count)
			for i := range result {
				result[i] = gen.Next()
			}
			return result, nil
		},
	},
	{
		Name:        "random_ints",
		Signature:   "random_ints(count: int, min: int, max: int) -> int[]",
		Description: "Fills a list with uniform random integers from [min, max]",
		Example:     []string{"5", "1", "100"},
		Invoke: func(env *Env, args []string) (any, error) {
			const op = "Numeric.random_ints"
			if err := checkArity(op, args, 3, 3); err != nil {
				return nil, err
			}
			var nums [3]int
			for i, arg := range args {
				n, err := parseInt(op, arg)
				if err != nil {
					return nil, err
				}
				nums[i] = n
			}
			return numeric.RandomInts(nums[0], nums[1], nums[2], env.Source)
		},
	},
}
