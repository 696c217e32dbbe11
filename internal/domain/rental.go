package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	tenantSurcharge    = decimal.RequireFromString("0.025")
	maxTenantSurcharge = decimal.RequireFromString("0.10")
)

// RentalUnit is a let unit billed per area, with a surcharge per additional
// tenant capped at ten percent.
type RentalUnit struct {
	unitBase
	rentRate decimal.Decimal
	tenants  int
}

type rentalTerms struct {
	RentRate decimal.Decimal `validate:"gt=0"`
	Tenants  int             `validate:"gt=0"`
}

func NewRentalUnit(attrs Attributes, rentRate decimal.Decimal, tenants int) (*RentalUnit, error) {
	base, err := newUnitBase(attrs)
	if err != nil {
		return nil, err
	}
	terms := rentalTerms{
		RentRate: roundMoney(rentRate),
		Tenants:  tenants,
	}
	if err := checkStruct(terms); err != nil {
		return nil, err
	}
	return &RentalUnit{
		unitBase: base,
		rentRate: terms.RentRate,
		tenants:  terms.Tenants,
	}, nil
}

func (r *RentalUnit) Kind() Kind { return KindRental }
func (r *RentalUnit) RentRate() decimal.Decimal { return r.rentRate }
func (r *RentalUnit) Tenants() int { return r.tenants }

// TotalCost is rent * area * (1 + min((tenants - 1) * 0.025, 0.10)).
func (r *RentalUnit) TotalCost() decimal.Decimal {
	surcharge := decimal.Min(
		tenantSurcharge.Mul(decimal.NewFromInt(int64(r.tenants-1))),
		maxTenantSurcharge,
	)
	return r.rentRate.
		Mul(decimal.NewFromFloat(r.area)).
		Mul(decimal.NewFromInt(1).Add(surcharge))
}

func (r *RentalUnit) String() string {
	var sb strings.Builder
	r.render(&sb, r.Kind())
	writeField(&sb, "Miete/m2", r.rentRate.StringFixed(2))
	writeField(&sb, "Anzahl Mieter", strconv.Itoa(r.tenants))
	return sb.String()
}
