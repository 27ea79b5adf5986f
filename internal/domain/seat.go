package domain

import (
	"fmt"
	"strings"
)

type SeatCategory string

const (
	SeatStandard   SeatCategory = "Standard"
	SeatPremium    SeatCategory = "Premium"
	SeatAccessible SeatCategory = "Accessible"
)

// Multiplier is the category price adjustment applied once at construction.
func (c SeatCategory) Multiplier() float64 {
	switch c {
	case SeatPremium:
		return 1.2
	case SeatAccessible:
		return 0.8
	default:
		return 1.0
	}
}

// Seat is one bookable unit. Number and Price are fixed at construction;
// HolderID is the id of the current holder, 0 when the seat is free.
type Seat struct {
	Number   int
	Category SeatCategory
	Price    float64
	HolderID int

	// Amenities is set for Premium seats, Accessibility for Accessible seats.
	Amenities     []string
	Accessibility string
}

// NewSeat derives the effective price from the base rate and the category
// multiplier. The price is never recomputed afterwards.
func NewSeat(number int, category SeatCategory, basePrice float64) Seat {
	return Seat{
		Number:   number,
		Category: category,
		Price:    basePrice * category.Multiplier(),
	}
}

func (s *Seat) Available() bool {
	return s.HolderID == 0
}

// HeldBy reports whether the seat is currently held by the given customer.
func (s *Seat) HeldBy(customerID int) bool {
	return s.HolderID != 0 && s.HolderID == customerID
}

// Reserve claims the seat for the given customer. A taken seat is left
// untouched and reported via ErrSeatTaken.
func (s *Seat) Reserve(customerID int) error {
	if s.HolderID != 0 {
		return ErrSeatTaken
	}
	s.HolderID = customerID
	return nil
}

// Cancel releases the seat, but only for the customer that holds it. A free
// seat or a seat held by someone else fails with ErrNotHolder and no state
// change, so nobody can cancel another customer's reservation.
func (s *Seat) Cancel(customerID int) error {
	if !s.HeldBy(customerID) {
		return ErrNotHolder
	}
	s.HolderID = 0
	return nil
}

// String renders the seat for listings and exports:
// "Seat 5 (Standard): Price: 50.00" plus the category suffix.
func (s Seat) String() string {
	out := fmt.Sprintf("Seat %d (%s): Price: %.2f", s.Number, s.Category, s.Price)
	switch s.Category {
	case SeatPremium:
		out += ", Amenities: " + strings.Join(s.Amenities, ", ")
	case SeatAccessible:
		out += ", Accessibility: " + s.Accessibility
	}
	return out
}
