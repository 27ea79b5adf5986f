package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pwalczak/theater-box-office/internal/app"
	"github.com/pwalczak/theater-box-office/internal/domain"
)

func TestReserveMessage(t *testing.T) {
	seat := domain.NewSeat(5, domain.SeatStandard, 50)
	msg := ReserveMessage(seat)

	assert.Equal(t, "Reserved seat 5 for 50.00", msg)
	assert.Contains(t, msg, "50.00")
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrSeatNotFound, "Seat does not exist"},
		{domain.ErrSeatTaken, "Seat is already taken"},
		{domain.ErrNotHolder, "You cannot cancel this reservation"},
		{domain.ErrNoActiveReservation, "You cannot cancel this reservation"},
		{domain.ErrCustomerNotFound, "No customer with that ID"},
		{errors.New("disk full"), "disk full"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ErrorMessage(tc.err))
	}
}

func TestHistoryLine(t *testing.T) {
	entry := app.HistoryEntry{
		Reservation: domain.Reservation{
			SeatNumber: 5,
			Status:     domain.ReservationActive,
			CreatedAt:  time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
		},
		Seat: domain.NewSeat(5, domain.SeatStandard, 50),
	}

	assert.Equal(t,
		"2026-03-01 18:00:00 | Seat 5 (Standard): Price: 50.00 | Status: active",
		HistoryLine(entry))
}
