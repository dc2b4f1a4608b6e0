package domain

import (
	"fmt"
	"strings"
)

// SlotAddress identifies one grave plot: a row letter and a number within the row.
type SlotAddress struct {
	Letter string `json:"letter"`
	Number int    `json:"number"`
}

// NewSlotAddress normalizes the letter to upper case. Range checks belong to the Catalog.
func NewSlotAddress(letter string, number int) SlotAddress {
	return SlotAddress{
		Letter: strings.ToUpper(strings.TrimSpace(letter)),
		Number: number,
	}
}

func (a SlotAddress) String() string {
	return fmt.Sprintf("%s%d", a.Letter, a.Number)
}

// Key is the field name used by key-value stores, e.g. "C:14".
func (a SlotAddress) Key() string {
	return fmt.Sprintf("%s:%d", a.Letter, a.Number)
}

// SlotFilter narrows the catalog. Zero values mean "any".
type SlotFilter struct {
	Letter string
	Number int
}

func (f SlotFilter) Matches(a SlotAddress) bool {
	if f.Letter != "" && f.Letter != a.Letter {
		return false
	}
	if f.Number != 0 && f.Number != a.Number {
		return false
	}
	return true
}
