package domain

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name         string
		letters      int
		maxPerLetter int
	}{
		{"zero letters", 0, 10},
		{"too many letters", 27, 10},
		{"zero numbers", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.letters, tt.maxPerLetter)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCatalog_IsValidAddress(t *testing.T) {
	c, err := NewCatalog(DefaultLetters, DefaultMaxPerLetter)
	require.NoError(t, err)

	assert.Equal(t, 2600, c.Capacity())

	valid := []SlotAddress{{"A", 1}, {"Z", 100}, {"C", 14}}
	for _, a := range valid {
		assert.True(t, c.Contains(a), a.String())
		assert.NoError(t, c.Validate(a))
	}

	invalid := []SlotAddress{{"A", 0}, {"A", 101}, {"a", 1}, {"", 1}, {"AA", 1}, {"1", 1}, {"Ž", 1}}
	for _, a := range invalid {
		assert.False(t, c.Contains(a), a.String())
		assert.ErrorIs(t, c.Validate(a), ErrInvalidAddress)
	}
}

func TestCatalog_SmallCatalogBounds(t *testing.T) {
	c, err := NewCatalog(2, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, c.Letters())
	assert.True(t, c.IsValidAddress("B", 3))
	assert.False(t, c.IsValidAddress("C", 1))
	assert.False(t, c.IsValidAddress("B", 4))
}

func TestCatalog_List(t *testing.T) {
	c, err := NewCatalog(2, 3)
	require.NoError(t, err)

	all := slices.Collect(c.List(SlotFilter{}))
	assert.Equal(t, []SlotAddress{
		{"A", 1}, {"A", 2}, {"A", 3},
		{"B", 1}, {"B", 2}, {"B", 3},
	}, all)
	assert.Len(t, all, c.Capacity())

	// a second enumeration starts over
	assert.Equal(t, all, slices.Collect(c.List(SlotFilter{})))

	assert.Equal(t, []SlotAddress{{"B", 1}, {"B", 2}, {"B", 3}}, slices.Collect(c.List(SlotFilter{Letter: "B"})))
	assert.Equal(t, []SlotAddress{{"A", 2}, {"B", 2}}, slices.Collect(c.List(SlotFilter{Number: 2})))
	assert.Equal(t, []SlotAddress{{"A", 3}}, slices.Collect(c.List(SlotFilter{Letter: "A", Number: 3})))
	assert.Empty(t, slices.Collect(c.List(SlotFilter{Letter: "Q"})))
}

func TestCatalog_ListStopsEarly(t *testing.T) {
	c, err := NewCatalog(26, 100)
	require.NoError(t, err)

	var got []SlotAddress
	for a := range c.List(SlotFilter{}) {
		got = append(got, a)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []SlotAddress{{"A", 1}, {"A", 2}, {"A", 3}}, got)
}

func TestCatalog_Count(t *testing.T) {
	c, err := NewCatalog(4, 10)
	require.NoError(t, err)

	filters := []SlotFilter{{}, {Letter: "B"}, {Number: 7}, {Letter: "D", Number: 10}, {Letter: "E"}, {Number: 11}}
	for _, f := range filters {
		assert.Equal(t, len(slices.Collect(c.List(f))), c.Count(f), "%+v", f)
	}
}

func TestSlotAddress(t *testing.T) {
	a := NewSlotAddress(" c ", 14)

	assert.Equal(t, SlotAddress{Letter: "C", Number: 14}, a)
	assert.Equal(t, "C14", a.String())
	assert.Equal(t, "C:14", a.Key())
}

func TestReservation_IsActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	before := now.Add(-time.Second)
	after := now.Add(time.Second)

	assert.True(t, (&Reservation{}).IsActive(now), "no expiry")
	assert.True(t, (&Reservation{ExpiresAt: &after}).IsActive(now))
	assert.False(t, (&Reservation{ExpiresAt: &now}).IsActive(now), "expiry equal to now is expired")
	assert.False(t, (&Reservation{ExpiresAt: &before}).IsActive(now))
}

func TestSortReservations(t *testing.T) {
	rs := []*Reservation{
		{Address: SlotAddress{"B", 1}},
		{Address: SlotAddress{"A", 10}},
		{Address: SlotAddress{"A", 2}},
	}

	SortReservations(rs)

	assert.Equal(t, SlotAddress{"A", 2}, rs[0].Address)
	assert.Equal(t, SlotAddress{"A", 10}, rs[1].Address)
	assert.Equal(t, SlotAddress{"B", 1}, rs[2].Address)
}
