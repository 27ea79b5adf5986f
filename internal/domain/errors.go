package domain

import "errors"

var (
	ErrSeatNotFound        = errors.New("seat does not exist")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrSeatTaken           = errors.New("seat is already taken")
	ErrNotHolder           = errors.New("cannot cancel this reservation")
	ErrNoActiveReservation = errors.New("no active reservation for this seat")
)
