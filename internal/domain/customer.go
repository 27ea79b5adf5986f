package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is one entry in a customer's history. Records are appended on
// successful booking and never removed; the only transition is
// active -> cancelled, which stamps CancelledAt and keeps CreatedAt.
type Reservation struct {
	ID          string
	SeatNumber  int
	Status      ReservationStatus
	CreatedAt   time.Time
	CancelledAt *time.Time
}

// Customer is identity plus an append-only reservation history, oldest first.
type Customer struct {
	ID        int
	FirstName string
	LastName  string
	History   []Reservation
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// AddReservation appends an active record for the seat. Conflict checking is
// not this layer's job; Seat.Reserve has already been consulted by the venue.
func (c *Customer) AddReservation(seatNumber int, now time.Time) Reservation {
	rec := Reservation{
		ID:         uuid.NewString(),
		SeatNumber: seatNumber,
		Status:     ReservationActive,
		CreatedAt:  now,
	}
	c.History = append(c.History, rec)
	return rec
}

// CancelReservation flips the most recent active record for the seat to
// cancelled. Scanning backwards makes the tie-break deterministic when the
// same seat was booked, cancelled and booked again.
func (c *Customer) CancelReservation(seatNumber int, now time.Time) error {
	for i := len(c.History) - 1; i >= 0; i-- {
		rec := &c.History[i]
		if rec.SeatNumber != seatNumber || rec.Status != ReservationActive {
			continue
		}
		rec.Status = ReservationCancelled
		rec.CancelledAt = &now
		return nil
	}
	return ErrNoActiveReservation
}
