// Package calc provides the arithmetic commands of the demo set.
package calc

import (
	"errors"
	"math"
	"strconv"

	"github.com/DimaEnotoff/friendlyclp/internal/argument"
)

// Add sums two integers.
type Add struct{}

func (Add) Aliases() []string   { return []string{"add", "a"} }
func (Add) Description() string { return "Add two integers" }

func (Add) Arguments() []argument.Def {
	return []argument.Def{
		argument.Int(0, "x", "first addend"),
		argument.Int(1, "y", "second addend"),
	}
}

func (Add) Execute(args *argument.Set) (string, error) {
	return strconv.Itoa(args.Int("x") + args.Int("y")), nil
}

// Div divides two integers. The divisor rejects zero at validation time, so
// the callback never sees one.
type Div struct{}

func (Div) Aliases() []string   { return []string{"div", "d"} }
func (Div) Description() string { return "Divide one integer by another" }

func (Div) Arguments() []argument.Def {
	return []argument.Def{
		argument.Int(0, "dividend", "number to divide"),
		argument.IntChecked(1, "divisor", "number to divide by", func(v int) error {
			if v == 0 {
				return errors.New("Division by zero is not allowed.")
			}
			return nil
		}),
	}
}

func (Div) Execute(args *argument.Set) (string, error) {
	return strconv.Itoa(args.Int("dividend") / args.Int("divisor")), nil
}

// Sum adds up any number of integers; no numbers at all sum to zero.
type Sum struct{}

func (Sum) Aliases() []string   { return []string{"sum", "s"} }
func (Sum) Description() string { return "Sum any number of integers" }

func (Sum) Arguments() []argument.Def {
	return []argument.Def{
		argument.IntList(0, "numbers", "integers to sum", argument.WithDefault("")),
	}
}

func (Sum) Execute(args *argument.Set) (string, error) {
	total := 0
	for _, v := range args.Ints("numbers") {
		total += v
	}
	return strconv.Itoa(total), nil
}

// Sqrt takes the square root of a non-negative integer.
type Sqrt struct{}

func (Sqrt) Aliases() []string   { return []string{"sqrt"} }
func (Sqrt) Description() string { return "Square root of a non-negative integer" }

func (Sqrt) Arguments() []argument.Def {
	return []argument.Def{
		argument.NonNegativeInt(0, "x", "number to take the root of"),
	}
}

func (Sqrt) Execute(args *argument.Set) (string, error) {
	return strconv.FormatFloat(math.Sqrt(float64(args.Int("x"))), 'g', -1, 64), nil
}
