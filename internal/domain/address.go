package domain

import "fmt"

// Address is the postal location of a unit. It is held by value, so every
// unit owns its own copy.
type Address struct {
	PostalCode  int
	Street      string
	HouseNumber int
	Door        int
}

func NewAddress(postalCode int, street string, houseNumber, door int) Address {
	return Address{
		PostalCode:  postalCode,
		Street:      street,
		HouseNumber: houseNumber,
		Door:        door,
	}
}

func (a Address) String() string {
	return fmt.Sprintf("(PLZ) %d, %s %d / %d", a.PostalCode, a.Street, a.HouseNumber, a.Door)
}
