package store

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/shopspring/decimal"

	"github.com/vbonduro/unitregistry/internal/domain"
)

// The stored collection is a CBOR array of unitRecord in insertion order.
// There is no version field; changing these records breaks existing stores.
type unitRecord struct {
	Kind          string        `cbor:"kind"`
	ID            int           `cbor:"id"`
	Area          float64       `cbor:"area"`
	Rooms         int           `cbor:"rooms"`
	Floor         int           `cbor:"floor"`
	Built         string        `cbor:"built"`
	Address       addressRecord `cbor:"address"`
	OperatingRate string        `cbor:"operating_rate,omitempty"`
	ReserveRate   string        `cbor:"reserve_rate,omitempty"`
	RentRate      string        `cbor:"rent_rate,omitempty"`
	Tenants       int           `cbor:"tenants,omitempty"`
}

type addressRecord struct {
	PostalCode  int    `cbor:"postal_code"`
	Street      string `cbor:"street"`
	HouseNumber int    `cbor:"house_number"`
	Door        int    `cbor:"door"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = (cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}).DecMode(); err != nil {
		panic(err)
	}
}

func encodeUnits(units []domain.Unit) ([]byte, error) {
	records := make([]unitRecord, 0, len(units))
	for _, u := range units {
		rec, err := toRecord(u)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return encMode.Marshal(records)
}

func decodeUnits(data []byte) ([]domain.Unit, error) {
	var records []unitRecord
	if err := decMode.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}

	units := make([]domain.Unit, 0, len(records))
	for i, rec := range records {
		u, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		units = append(units, u)
	}
	return units, nil
}

func toRecord(u domain.Unit) (unitRecord, error) {
	a := u.Address()
	rec := unitRecord{
		Kind:  string(u.Kind()),
		ID:    u.ID(),
		Area:  u.Area(),
		Rooms: u.Rooms(),
		Floor: u.Floor(),
		Built: u.Built().Format(time.DateOnly),
		Address: addressRecord{
			PostalCode:  a.PostalCode,
			Street:      a.Street,
			HouseNumber: a.HouseNumber,
			Door:        a.Door,
		},
	}

	switch u.Kind() {
	case domain.KindCondo:
		c := u.(*domain.CondoUnit)
		rec.OperatingRate = c.OperatingRate().StringFixed(2)
		rec.ReserveRate = c.ReserveRate().StringFixed(2)
	case domain.KindRental:
		r := u.(*domain.RentalUnit)
		rec.RentRate = r.RentRate().StringFixed(2)
		rec.Tenants = r.Tenants()
	default:
		return unitRecord{}, fmt.Errorf("unit %d: unknown kind %q", u.ID(), u.Kind())
	}
	return rec, nil
}

func fromRecord(rec unitRecord) (domain.Unit, error) {
	built, err := time.Parse(time.DateOnly, rec.Built)
	if err != nil {
		return nil, fmt.Errorf("invalid construction date: %w", err)
	}

	attrs := domain.Attributes{
		ID:    rec.ID,
		Area:  rec.Area,
		Rooms: rec.Rooms,
		Floor: rec.Floor,
		Built: built,
		Address: domain.NewAddress(
			rec.Address.PostalCode,
			rec.Address.Street,
			rec.Address.HouseNumber,
			rec.Address.Door,
		),
	}

	kind, err := domain.ParseKind(rec.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.KindCondo:
		operating, err := decimal.NewFromString(rec.OperatingRate)
		if err != nil {
			return nil, fmt.Errorf("invalid operating rate: %w", err)
		}
		reserve, err := decimal.NewFromString(rec.ReserveRate)
		if err != nil {
			return nil, fmt.Errorf("invalid reserve rate: %w", err)
		}
		return domain.NewCondoUnit(attrs, operating, reserve)
	default:
		rent, err := decimal.NewFromString(rec.RentRate)
		if err != nil {
			return nil, fmt.Errorf("invalid rent rate: %w", err)
		}
		return domain.NewRentalUnit(attrs, rent, rec.Tenants)
	}
}
