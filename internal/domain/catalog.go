package domain

import (
	"fmt"
	"iter"
)

const (
	DefaultLetters      = 26
	DefaultMaxPerLetter = 100
)

// Catalog is the fixed address space of plots: Letters rows (A, B, ...)
// with numbers 1..MaxPerLetter in each. It is configuration, nothing is persisted.
type Catalog struct {
	letters      int
	maxPerLetter int
}

func NewCatalog(letters, maxPerLetter int) (*Catalog, error) {
	if letters < 1 || letters > 26 {
		return nil, fmt.Errorf("%w: letters must be in [1, 26], got %d", ErrValidation, letters)
	}
	if maxPerLetter < 1 {
		return nil, fmt.Errorf("%w: max per letter must be positive, got %d", ErrValidation, maxPerLetter)
	}
	return &Catalog{letters: letters, maxPerLetter: maxPerLetter}, nil
}

func (c *Catalog) MaxPerLetter() int { return c.maxPerLetter }

// Capacity is letters × numbers.
func (c *Catalog) Capacity() int {
	return c.letters * c.maxPerLetter
}

func (c *Catalog) Letters() []string {
	res := make([]string, 0, c.letters)
	for i := 0; i < c.letters; i++ {
		res = append(res, string(rune('A'+i)))
	}
	return res
}

func (c *Catalog) IsValidAddress(letter string, number int) bool {
	if len(letter) != 1 {
		return false
	}
	l := letter[0]
	if l < 'A' || int(l-'A') >= c.letters {
		return false
	}
	return number >= 1 && number <= c.maxPerLetter
}

func (c *Catalog) Contains(a SlotAddress) bool {
	return c.IsValidAddress(a.Letter, a.Number)
}

func (c *Catalog) Validate(a SlotAddress) error {
	if !c.Contains(a) {
		return fmt.Errorf("%w: %s (letters A-%c, numbers 1-%d)",
			ErrInvalidAddress, a, rune('A'+c.letters-1), c.maxPerLetter)
	}
	return nil
}

// List yields the addresses matching f ordered by letter, then number.
// Every call starts a fresh enumeration.
func (c *Catalog) List(f SlotFilter) iter.Seq[SlotAddress] {
	return func(yield func(SlotAddress) bool) {
		for _, letter := range c.Letters() {
			if f.Letter != "" && f.Letter != letter {
				continue
			}
			for n := 1; n <= c.maxPerLetter; n++ {
				if f.Number != 0 && f.Number != n {
					continue
				}
				if !yield(SlotAddress{Letter: letter, Number: n}) {
					return
				}
			}
		}
	}
}

// Count is the number of addresses List(f) yields.
func (c *Catalog) Count(f SlotFilter) int {
	letters := c.letters
	if f.Letter != "" {
		if !c.IsValidAddress(f.Letter, 1) {
			return 0
		}
		letters = 1
	}
	numbers := c.maxPerLetter
	if f.Number != 0 {
		if f.Number < 1 || f.Number > c.maxPerLetter {
			return 0
		}
		numbers = 1
	}
	return letters * numbers
}
