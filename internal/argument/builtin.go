package argument

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the calendar format accepted by Date arguments.
const DateLayout = "2006-01-02"

const (
	detailNumeric  = "Numeric value expected."
	detailNegative = "Negative value is not allowed."
	detailChar     = "Single character expected."
	detailDate     = "Date in YYYY-MM-DD format expected."
)

// Int is a standard integer argument.
func Int(position int, name, description string, opts ...Option) Def {
	return IntChecked(position, name, description, nil, opts...)
}

func parseInt(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.New(detailNumeric)
	}
	return v, nil
}

// IntChecked is an integer argument with a caller-supplied semantic check.
// The error text returned by validate names only the rule (for example
// "Division by zero is not allowed."); the engine prefixes the argument name.
func IntChecked(position int, name, description string, validate func(int) error, opts ...Option) Def {
	return New(newSpec(position, name, description, opts), parseInt, validate)
}

// NonNegativeInt is an integer argument rejecting values below zero.
func NonNegativeInt(position int, name, description string, opts ...Option) Def {
	return IntChecked(position, name, description, func(v int) error {
		if v < 0 {
			return errors.New(detailNegative)
		}
		return nil
	}, opts...)
}

// Int64 is a long integer argument.
func Int64(position int, name, description string, opts ...Option) Def {
	return New(newSpec(position, name, description, opts), func(token string) (int64, error) {
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return 0, errors.New(detailNumeric)
		}
		return v, nil
	}, nil)
}

// Float64 is a floating-point argument.
func Float64(position int, name, description string, opts ...Option) Def {
	return New(newSpec(position, name, description, opts), func(token string) (float64, error) {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, errors.New(detailNumeric)
		}
		return v, nil
	}, nil)
}

// Decimal is an exact decimal argument backed by a big.Rat.
func Decimal(position int, name, description string, opts ...Option) Def {
	return New(newSpec(position, name, description, opts), func(token string) (*big.Rat, error) {
		v, ok := new(big.Rat).SetString(token)
		if !ok {
			return nil, errors.New(detailNumeric)
		}
		return v, nil
	}, nil)
}

// IntList is a multisegmented argument holding zero or more integers split
// on whitespace. An empty list is a legal value. The first malformed element
// fails conversion with its 1-based index in the detail.
func IntList(position int, name, description string, opts ...Option) Def {
	spec := newSpec(position, name, description, opts)
	spec.Multisegmented = true
	return New(spec, func(token string) ([]int, error) {
		fields := strings.Fields(token)
		values := make([]int, 0, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("Numeric value expected (element %d).", i+1)
			}
			values = append(values, v)
		}
		return values, nil
	}, nil)
}

// String is a text argument. Combine with Multisegmented to allow embedded
// spaces; a plain String consumes exactly one token.
func String(position int, name, description string, opts ...Option) Def {
	return New(newSpec(position, name, description, opts), func(token string) (string, error) {
		return token, nil
	}, nil)
}

// Char is an argument holding exactly one code point.
func Char(position int, name, description string, opts ...Option) Def {
	return New(newSpec(position, name, description, opts), func(token string) (rune, error) {
		if utf8.RuneCountInString(token) != 1 {
			return 0, errors.New(detailChar)
		}
		r, _ := utf8.DecodeRuneInString(token)
		return r, nil
	}, nil)
}

// Date is a calendar date argument in YYYY-MM-DD form.
func Date(position int, name, description string, opts ...Option) Def {
	return New(newSpec(position, name, description, opts), func(token string) (time.Time, error) {
		t, err := time.Parse(DateLayout, token)
		if err != nil {
			return time.Time{}, errors.New(detailDate)
		}
		return t, nil
	}, nil)
}

// Bool accepts true/t and false/f, case-insensitively.
func Bool(position int, name, description string, opts ...Option) Def {
	return synonymBool(position, name, description, "true", "t", "false", "f", opts)
}

// YesNo accepts yes/y and no/n, case-insensitively.
func YesNo(position int, name, description string, opts ...Option) Def {
	return synonymBool(position, name, description, "yes", "y", "no", "n", opts)
}

// AllowedForbidden accepts allowed/a and forbidden/f, case-insensitively.
func AllowedForbidden(position int, name, description string, opts ...Option) Def {
	return synonymBool(position, name, description, "allowed", "a", "forbidden", "f", opts)
}

// synonymBool builds one member of the boolean family. The families differ
// only by their synonym tables, so a single constructor serves all of them.
func synonymBool(position int, name, description, trueWord, trueShort, falseWord, falseShort string, opts []Option) Def {
	detail := fmt.Sprintf("%q/%q or %q/%q expected.", trueWord, trueShort, falseWord, falseShort)
	return New(newSpec(position, name, description, opts), func(token string) (bool, error) {
		switch strings.ToLower(token) {
		case trueWord, trueShort:
			return true, nil
		case falseWord, falseShort:
			return false, nil
		}
		return false, errors.New(detail)
	}, nil)
}
