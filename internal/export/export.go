// Package export writes read-only projections of venue state to plain-text
// files. It renders what the core returns and defines no state of its own.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pwalczak/theater-box-office/internal/app"
	"github.com/pwalczak/theater-box-office/internal/clock"
	"github.com/pwalczak/theater-box-office/internal/domain"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	filenameLayout  = "200601021504"
	separator       = "============================================"
)

type Exporter struct {
	dir   string
	clock clock.Clock
}

func NewExporter(dir string, clk clock.Clock) *Exporter {
	return &Exporter{dir: dir, clock: clk}
}

// CustomerHistory writes the customer's reservation history to
// reservations_<customerId>_<YYYYMMDDHHMM>.txt and returns the path.
func (e *Exporter) CustomerHistory(customer domain.Customer, entries []app.HistoryEntry) (string, error) {
	name := fmt.Sprintf("reservations_%d_%s.txt", customer.ID, e.clock.Now().Format(filenameLayout))

	var b strings.Builder
	fmt.Fprintf(&b, "Reservation history for customer %d\n", customer.ID)
	fmt.Fprintf(&b, "Name: %s\n", customer.FullName())
	b.WriteString(separator + "\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s | %s | Status: %s\n",
			entry.Reservation.CreatedAt.Format(timestampLayout),
			entry.Seat,
			entry.Reservation.Status,
		)
	}

	return e.write(name, b.String())
}

// SeatState writes the availability of every seat to
// seat_state_<YYYYMMDDHHMM>.txt and returns the path.
func (e *Exporter) SeatState(seats []domain.Seat) (string, error) {
	name := fmt.Sprintf("seat_state_%s.txt", e.clock.Now().Format(filenameLayout))

	var b strings.Builder
	b.WriteString("Seat state\n")
	b.WriteString(separator + "\n")
	for _, seat := range seats {
		status := "Available"
		if !seat.Available() {
			status = fmt.Sprintf("Taken by customer %d", seat.HolderID)
		}
		fmt.Fprintf(&b, "%s | Status: %s\n", seat, status)
	}

	return e.write(name, b.String())
}

func (e *Exporter) write(name, body string) (string, error) {
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", name, err)
	}
	return path, nil
}
