package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var floorSurcharge = decimal.RequireFromString("0.02")

// CondoUnit is an owner-occupied unit billed per area for operating costs and
// the reserve fund.
type CondoUnit struct {
	unitBase
	operatingRate decimal.Decimal
	reserveRate   decimal.Decimal
}

type condoRates struct {
	OperatingRate decimal.Decimal `validate:"gt=0"`
	ReserveRate   decimal.Decimal `validate:"gt=0"`
}

func NewCondoUnit(attrs Attributes, operatingRate, reserveRate decimal.Decimal) (*CondoUnit, error) {
	base, err := newUnitBase(attrs)
	if err != nil {
		return nil, err
	}
	rates := condoRates{
		OperatingRate: roundMoney(operatingRate),
		ReserveRate:   roundMoney(reserveRate),
	}
	if err := checkStruct(rates); err != nil {
		return nil, err
	}
	return &CondoUnit{
		unitBase:      base,
		operatingRate: rates.OperatingRate,
		reserveRate:   rates.ReserveRate,
	}, nil
}

func (c *CondoUnit) Kind() Kind { return KindCondo }
func (c *CondoUnit) OperatingRate() decimal.Decimal { return c.operatingRate }
func (c *CondoUnit) ReserveRate() decimal.Decimal { return c.reserveRate }

// TotalCost is (operating + reserve) * area * (1 + 0.02 * floor).
func (c *CondoUnit) TotalCost() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(floorSurcharge.Mul(decimal.NewFromInt(int64(c.floor))))
	return c.operatingRate.Add(c.reserveRate).
		Mul(decimal.NewFromFloat(c.area)).
		Mul(factor)
}

func (c *CondoUnit) String() string {
	var sb strings.Builder
	c.render(&sb, c.Kind())
	writeField(&sb, "Betriebskosten", c.operatingRate.StringFixed(2))
	writeField(&sb, "Ruecklage", c.reserveRate.StringFixed(2))
	return sb.String()
}
