package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeat_PriceByCategory(t *testing.T) {
	assert.InDelta(t, 50.0, NewSeat(1, SeatStandard, 50).Price, 1e-9)
	assert.InDelta(t, 60.0, NewSeat(31, SeatPremium, 50).Price, 1e-9)
	assert.InDelta(t, 40.0, NewSeat(41, SeatAccessible, 50).Price, 1e-9)
}

func TestSeat_ReserveAndCancel(t *testing.T) {
	seat := NewSeat(5, SeatStandard, 50)

	require.True(t, seat.Available())
	assert.False(t, seat.HeldBy(0), "a free seat has no holder, not even id 0")

	require.NoError(t, seat.Reserve(1))
	assert.False(t, seat.Available())
	assert.Equal(t, 1, seat.HolderID)
	assert.True(t, seat.HeldBy(1))
	assert.False(t, seat.HeldBy(2))

	// taken seat refuses a second claim and keeps its holder
	assert.ErrorIs(t, seat.Reserve(2), ErrSeatTaken)
	assert.Equal(t, 1, seat.HolderID)

	// only the holder may cancel
	assert.ErrorIs(t, seat.Cancel(2), ErrNotHolder)
	assert.Equal(t, 1, seat.HolderID)

	require.NoError(t, seat.Cancel(1))
	assert.True(t, seat.Available())

	// cancelling a free seat fails too
	assert.ErrorIs(t, seat.Cancel(1), ErrNotHolder)
}

func TestSeat_String(t *testing.T) {
	standard := NewSeat(5, SeatStandard, 50)
	assert.Equal(t, "Seat 5 (Standard): Price: 50.00", standard.String())

	premium := NewSeat(31, SeatPremium, 50)
	premium.Amenities = []string{"lounge access", "waiter service"}
	assert.Equal(t, "Seat 31 (Premium): Price: 60.00, Amenities: lounge access, waiter service", premium.String())

	accessible := NewSeat(41, SeatAccessible, 50)
	accessible.Accessibility = "wheelchair ramp"
	assert.Equal(t, "Seat 41 (Accessible): Price: 40.00, Accessibility: wheelchair ramp", accessible.String())
}
