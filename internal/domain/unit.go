package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the two-letter discriminator of a unit variant.
type Kind string

const (
	KindCondo  Kind = "EW"
	KindRental Kind = "MW"
)

// Kinds lists every unit variant in display order.
var Kinds = []Kind{KindCondo, KindRental}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown unit type %q", ErrInvalidParameter, s)
}

// Unit is a tracked real-estate unit. The set of implementations is closed:
// *CondoUnit and *RentalUnit.
type Unit interface {
	ID() int
	Area() float64
	Rooms() int
	Floor() int
	Built() time.Time
	Address() Address
	Kind() Kind
	// TotalCost is the monthly cost at full decimal precision.
	TotalCost() decimal.Decimal
	String() string

	shared() *unitBase
}

// AnyUnit matches every unit.
func AnyUnit(Unit) bool { return true }

// OfKind matches units carrying the given discriminator.
func OfKind(k Kind) func(Unit) bool {
	return func(u Unit) bool { return u.Kind() == k }
}

// Attributes are the fields shared by every unit variant.
type Attributes struct {
	ID      int
	Area    float64 `validate:"gt=0"`
	Rooms   int     `validate:"gt=0"`
	Floor   int
	Built   time.Time
	Address Address
}

// BuiltIn returns January 1st of the given year.
func BuiltIn(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// dateOf drops the clock part of t, keeping its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type unitBase struct {
	id      int
	area    float64
	rooms   int
	floor   int
	built   time.Time
	address Address
}

func newUnitBase(attrs Attributes) (unitBase, error) {
	built := dateOf(attrs.Built)
	if built.After(dateOf(time.Now())) {
		return unitBase{}, fmt.Errorf("%w: %s is in the future", ErrInvalidConstructionDate, built.Format(time.DateOnly))
	}
	if math.IsInf(attrs.Area, 0) || math.IsNaN(attrs.Area) {
		return unitBase{}, fmt.Errorf("%w: Area must be finite", ErrInvalidParameter)
	}
	if err := checkStruct(attrs); err != nil {
		return unitBase{}, err
	}
	return unitBase{
		id:      attrs.ID,
		area:    attrs.Area,
		rooms:   attrs.Rooms,
		floor:   attrs.Floor,
		built:   built,
		address: attrs.Address,
	}, nil
}

func (b *unitBase) ID() int { return b.id }
func (b *unitBase) Area() float64 { return b.area }
func (b *unitBase) Rooms() int { return b.rooms }
func (b *unitBase) Floor() int { return b.floor }
func (b *unitBase) Built() time.Time { return b.built }
func (b *unitBase) Address() Address { return b.address }
func (b *unitBase) shared() *unitBase { return b }

func (b *unitBase) render(sb *strings.Builder, kind Kind) {
	writeField(sb, "Typ", string(kind))
	writeField(sb, "Id", strconv.Itoa(b.id))
	writeField(sb, "Flaeche", strconv.FormatFloat(b.area, 'f', 2, 64))
	writeField(sb, "Zimmer", strconv.Itoa(b.rooms))
	writeField(sb, "Stock", strconv.Itoa(b.floor))
	writeField(sb, "Baujahr", strconv.Itoa(b.built.Year()))
	writeField(sb, "PLZ", strconv.Itoa(b.address.PostalCode))
	writeField(sb, "Strasse", b.address.Street)
	writeField(sb, "Hausnummer", strconv.Itoa(b.address.HouseNumber))
	writeField(sb, "Top", strconv.Itoa(b.address.Door))
}

// writeField appends one "key:" line, the key padded to a fixed column.
func writeField(sb *strings.Builder, key, value string) {
	fmt.Fprintf(sb, "%-16s%s\n", key+":", value)
}

// roundMoney applies the two-digit half-up rounding used for every stored rate.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
