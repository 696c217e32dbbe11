package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vbonduro/unitregistry/internal/domain"
)

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s expects %d arguments, got %d", domain.ErrInvalidParameter, cmd.Name(), n, len(args))
		}
		return nil
	}
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return fmt.Errorf("%w: %s accepts at most %d arguments, got %d", domain.ErrInvalidParameter, cmd.Name(), n, len(args))
		}
		return nil
	}
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", domain.ErrInvalidParameter, name, s)
	}
	return n, nil
}

func parseFloat(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", domain.ErrInvalidParameter, name, s)
	}
	return f, nil
}

func parseDecimal(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a decimal", domain.ErrInvalidParameter, name, s)
	}
	return d, nil
}

// parseBuilt accepts a four-digit year or a YYYY-MM-DD date.
func parseBuilt(s string) (time.Time, error) {
	if len(s) == 4 {
		year, err := parseInt("construction year", s)
		if err != nil {
			return time.Time{}, err
		}
		return domain.BuiltIn(year), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: construction date %q is neither a year nor YYYY-MM-DD", domain.ErrInvalidParameter, s)
	}
	return t, nil
}

// positionalNegatives inserts "--" before the first argument that is a
// negative number, so "-1" reaches the command as a value rather than as an
// unknown shorthand flag. An argument consumed as the value of a preceding
// flag is left alone; takesValue reports whether an argument is such a flag.
func positionalNegatives(args []string, takesValue func(arg string) bool) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !isNegativeNumber(arg) || (i > 0 && takesValue(args[i-1])) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}

func isNegativeNumber(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9'
}
