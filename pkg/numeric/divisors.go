package numeric

import (
	"sort"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

func requirePositive(op string, n int) error {
	if n <= 0 {
		return drillerrors.InvalidArgument(op, "number must be positive, got %d", n).WithValue(n)
	}
	return nil
}

// squareAtMost reports whether i*i <= n for positive i without computing i*i.
func squareAtMost(i, n int) bool {
	return i <= n/i
}

// eachDivisorPair calls fn for every i <= sqrt(n) dividing n, together with n/i.
func eachDivisorPair(n int, fn func(small, large int)) {
	for i := 1; squareAtMost(i, n); i++ {
		if n%i == 0 {
			fn(i, n/i)
		}
	}
}

// DivisorCount returns how many positive divisors n has.
// A square root divisor is counted once.
func DivisorCount(n int) (int, error) {
	if err := requirePositive("numeric.DivisorCount", n); err != nil {
		return 0, err
	}
	count := 0
	eachDivisorPair(n, func(small, large int) {
		count += 2
		if small == large {
			count--
		}
	})
	return count, nil
}

// DivisorSum returns the sum of the positive divisors of n using square root pairing.
//
// Example:
//
//	DivisorSum(84) => 224
func DivisorSum(n int) (int, error) {
	if err := requirePositive("numeric.DivisorSum", n); err != nil {
		return 0, err
	}
	sum := 0
	eachDivisorPair(n, func(small, large int) {
		sum += small
		if small != large {
			sum += large
		}
	})
	return sum, nil
}

// DivisorSumByScan returns the same value as DivisorSum by testing every candidate 1..n.
func DivisorSumByScan(n int) (int, error) {
	if err := requirePositive("numeric.DivisorSumByScan", n); err != nil {
		return 0, err
	}
	sum := 0
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			sum += d
		}
	}
	return sum, nil
}

// Divisors returns the positive divisors of n in ascending order.
func Divisors(n int) ([]int, error) {
	if err := requirePositive("numeric.Divisors", n); err != nil {
		return nil, err
	}
	var result []int
	eachDivisorPair(n, func(small, large int) {
		result = append(result, small)
		if small != large {
			result = append(result, large)
		}
	})
	sort.Ints(result)
	return result, nil
}

// DivisorTable replaces every number with the ascending list of its divisors.
//
// Example:
//
//	DivisorTable([]int{6, 15}) => [[1 2 3 6] [1 3 5 15]]
func DivisorTable(ns []int) ([][]int, error) {
	table := make([][]int, 0, len(ns))
	for _, n := range ns {
		divs, err := Divisors(n)
		if err != nil {
			return nil, err
		}
		table = append(table, divs)
	}
	return table, nil
}

// IsPrime reports whether n is prime. Numbers below 2 are not.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; squareAtMost(i, n); i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
