package cli

import (
	"errors"
	"fmt"

	"github.com/pwalczak/theater-box-office/internal/app"
	"github.com/pwalczak/theater-box-office/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// ReserveMessage is the confirmation shown after a successful booking,
// price included.
func ReserveMessage(seat domain.Seat) string {
	return fmt.Sprintf("Reserved seat %d for %.2f", seat.Number, seat.Price)
}

const CancelMessage = "Reservation cancelled"

// ErrorMessage maps core errors to the line shown to the user. Unknown
// errors pass through as-is.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrSeatNotFound):
		return "Seat does not exist"
	case errors.Is(err, domain.ErrSeatTaken):
		return "Seat is already taken"
	case errors.Is(err, domain.ErrNotHolder), errors.Is(err, domain.ErrNoActiveReservation):
		return "You cannot cancel this reservation"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "No customer with that ID"
	default:
		return err.Error()
	}
}

// HistoryLine renders one history entry for display and matches the export
// body layout.
func HistoryLine(entry app.HistoryEntry) string {
	return fmt.Sprintf("%s | %s | Status: %s",
		entry.Reservation.CreatedAt.Format(timestampLayout),
		entry.Seat,
		entry.Reservation.Status,
	)
}
