package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vbonduro/unitregistry/internal/domain"
)

func AddCmd(r *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "add <EW|MW> <id> <area> <rooms> <floor> <year|YYYY-MM-DD> <postal-code> <street> <house-number> <door> <rate> <reserve-rate|tenants>",
		Short: "Add a condominium (EW) or rental (MW) unit",
		Long: `Adds a unit to the store.

For a condominium (EW) the last two arguments are the operating-cost rate and
the reserve-fund rate per square metre. For a rental (MW) they are the rent per
square metre and the number of tenants. Rates are rounded half-up to cents.`,
		Args: exactArgs(12),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			attrs, err := parseAttributes(args[1:10])
			if err != nil {
				return err
			}
			unit, err := newUnit(kind, attrs, args[10], args[11])
			if err != nil {
				return err
			}

			svc, err := r.service()
			if err != nil {
				return err
			}
			if err := svc.Add(cmd.Context(), unit); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Info: unit %d added.\n", unit.ID())
			return nil
		},
	}
}

// parseAttributes reads id, area, rooms, floor, built, postal code, street,
// house number and door, in that order.
func parseAttributes(args []string) (domain.Attributes, error) {
	var attrs domain.Attributes
	var err error

	if attrs.ID, err = parseInt("id", args[0]); err != nil {
		return attrs, err
	}
	if attrs.Area, err = parseFloat("area", args[1]); err != nil {
		return attrs, err
	}
	if attrs.Rooms, err = parseInt("rooms", args[2]); err != nil {
		return attrs, err
	}
	if attrs.Floor, err = parseInt("floor", args[3]); err != nil {
		return attrs, err
	}
	if attrs.Built, err = parseBuilt(args[4]); err != nil {
		return attrs, err
	}

	postal, err := parseInt("postal code", args[5])
	if err != nil {
		return attrs, err
	}
	house, err := parseInt("house number", args[7])
	if err != nil {
		return attrs, err
	}
	door, err := parseInt("door", args[8])
	if err != nil {
		return attrs, err
	}
	attrs.Address = domain.NewAddress(postal, args[6], house, door)
	return attrs, nil
}

func newUnit(kind domain.Kind, attrs domain.Attributes, first, second string) (domain.Unit, error) {
	switch kind {
	case domain.KindCondo:
		operating, err := parseDecimal("operating rate", first)
		if err != nil {
			return nil, err
		}
		reserve, err := parseDecimal("reserve rate", second)
		if err != nil {
			return nil, err
		}
		return domain.NewCondoUnit(attrs, operating, reserve)
	case domain.KindRental:
		rent, err := parseDecimal("rent rate", first)
		if err != nil {
			return nil, err
		}
		tenants, err := parseInt("tenants", second)
		if err != nil {
			return nil, err
		}
		return domain.NewRentalUnit(attrs, rent, tenants)
	default:
		return nil, fmt.Errorf("%w: unknown unit type %q", domain.ErrInvalidParameter, kind)
	}
}
