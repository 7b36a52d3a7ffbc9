package registry

import (
	"strconv"
	"strings"
	"time"

	drillerrors "github.com/conduit-lang/drills/pkg/errors"
)

// Argument syntax accepted on the command line:
//
//	int      42, -7
//	list     1,2,3        (empty string is the empty list)
//	nested   1,2;3,4      (';' separates inner lists)
//	values   1,'2',a      (ints where possible, quotes force a string)
//	records  1:Alice,2:Bob
//	date     2025-01-18

const dateLayout = "2006-01-02"

func checkArity(op string, args []string, min, max int) error {
	if len(args) < min || len(args) > max {
		if min == max {
			return drillerrors.InvalidArgument(op, "expected %d argument(s), got %d", min, len(args))
		}
		return drillerrors.InvalidArgument(op, "expected %d to %d arguments, got %d", min, max, len(args))
	}
	return nil
}

func parseInt(op, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, drillerrors.Unparsable(op, s, err)
	}
	return n, nil
}

func parseInt64(op, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, drillerrors.Unparsable(op, s, err)
	}
	return n, nil
}

func parseFloat(op, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, drillerrors.Unparsable(op, s, err)
	}
	return f, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func parseInts(op, s string) ([]int, error) {
	items := splitList(s)
	result := make([]int, 0, len(items))
	for _, item := range items {
		n, err := parseInt(op, item)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

func parseNested(op, s string) ([][]int, error) {
	if strings.TrimSpace(s) == "" {
		return [][]int{}, nil
	}
	groups := strings.Split(s, ";")
	result := make([][]int, 0, len(groups))
	for _, group := range groups {
		inner, err := parseInts(op, group)
		if err != nil {
			return nil, err
		}
		result = append(result, inner)
	}
	return result, nil
}

// parseValues keeps the int/string distinction of mixed sequences: 2 and '2' differ.
func parseValues(s string) []any {
	items := splitList(s)
	result := make([]any, 0, len(items))
	for _, item := range items {
		if len(item) >= 2 && item[0] == '\'' && item[len(item)-1] == '\'' {
			result = append(result, item[1:len(item)-1])
			continue
		}
		if n, err := strconv.Atoi(item); err == nil {
			result = append(result, n)
			continue
		}
		result = append(result, item)
	}
	return result
}

// Record is the sample record type indexed by Sequence.to_mapping
type Record struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func parseRecords(op, s string) ([]Record, error) {
	items := splitList(s)
	result := make([]Record, 0, len(items))
	for _, item := range items {
		id, name, found := strings.Cut(item, ":")
		if !found {
			return nil, drillerrors.InvalidArgument(op, "record %q must look like id:name", item).WithValue(item)
		}
		n, err := parseInt(op, id)
		if err != nil {
			return nil, err
		}
		result = append(result, Record{ID: n, Name: name})
	}
	return result, nil
}

func parseDate(op, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, drillerrors.Unparsable(op, s, err)
	}
	return t, nil
}

// dateOrNow parses the optional date argument, defaulting to the environment clock.
func dateOrNow(env *Env, op string, args []string) (time.Time, error) {
	if len(args) == 0 {
		return env.Clock.Now(), nil
	}
	return parseDate(op, args[0])
}

func invalidCount(op string, count int) error {
	return drillerrors.InvalidArgument(op, "count must not be negative, got %d", count).WithValue(count)
}

func invalidSingleValue(op, s string) error {
	return drillerrors.InvalidArgument(op, "expected a single value, got %q", s).WithValue(s)
}
