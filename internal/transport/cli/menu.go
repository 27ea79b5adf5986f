// Package cli is the interactive driver. It marshals identifiers typed by
// the user, calls into the venue, and renders the returned values; no
// business rule lives here.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pwalczak/theater-box-office/internal/app"
	"github.com/pwalczak/theater-box-office/internal/domain"
)

// Venue is the minimal surface the menu needs from the booking core.
type Venue interface {
	RegisterCustomer(firstName, lastName string) domain.Customer
	ReserveSeat(seatNumber, customerID int) (domain.Seat, error)
	CancelReservation(seatNumber, customerID int) error
	AvailableSeats() []domain.Seat
	Seats() []domain.Seat
	History(customerID int) (domain.Customer, []app.HistoryEntry, error)
}

// Exporter writes the text exports and reports the file path written.
type Exporter interface {
	CustomerHistory(customer domain.Customer, entries []app.HistoryEntry) (string, error)
	SeatState(seats []domain.Seat) (string, error)
}

type Menu struct {
	venue    Venue
	exporter Exporter
	in       *bufio.Scanner
	out      io.Writer
	log      *zap.Logger
}

func NewMenu(venue Venue, exporter Exporter, in io.Reader, out io.Writer, log *zap.Logger) *Menu {
	return &Menu{
		venue:    venue,
		exporter: exporter,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      log,
	}
}

// Run drives the menu until the user quits or input ends.
func (m *Menu) Run() {
	for {
		m.printf("\n1. List available seats\n")
		m.printf("2. Register a new customer\n")
		m.printf("3. Reserve a seat\n")
		m.printf("4. Cancel a reservation\n")
		m.printf("5. Show reservation history\n")
		m.printf("6. Export customer history\n")
		m.printf("7. Export seat state\n")
		m.printf("8. Quit\n")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.listAvailable()
		case "2":
			m.register()
		case "3":
			m.reserve()
		case "4":
			m.cancel()
		case "5":
			m.showHistory()
		case "6":
			m.exportHistory()
		case "7":
			m.exportSeatState()
		case "8":
			return
		default:
			m.printf("Invalid choice\n")
		}
	}
}

func (m *Menu) listAvailable() {
	m.printf("\nAvailable seats:\n")
	for _, seat := range m.venue.AvailableSeats() {
		m.printf("%s\n", seat)
	}
}

func (m *Menu) register() {
	firstName, ok := m.promptNonEmpty("First name: ")
	if !ok {
		return
	}
	lastName, ok := m.promptNonEmpty("Last name: ")
	if !ok {
		return
	}

	customer := m.venue.RegisterCustomer(firstName, lastName)
	m.log.Info("customer registered", zap.Int("customer_id", customer.ID))
	m.printf("Registered customer with ID %d\n", customer.ID)
}

func (m *Menu) reserve() {
	seatNumber, ok := m.promptInt("Seat number: ")
	if !ok {
		return
	}
	customerID, ok := m.promptInt("Customer ID: ")
	if !ok {
		return
	}

	seat, err := m.venue.ReserveSeat(seatNumber, customerID)
	if err != nil {
		m.log.Warn("reservation refused",
			zap.Int("seat", seatNumber),
			zap.Int("customer_id", customerID),
			zap.Error(err))
		m.printf("%s\n", ErrorMessage(err))
		return
	}
	m.log.Info("seat reserved",
		zap.Int("seat", seat.Number),
		zap.Int("customer_id", customerID))
	m.printf("%s\n", ReserveMessage(seat))
}

func (m *Menu) cancel() {
	seatNumber, ok := m.promptInt("Seat number: ")
	if !ok {
		return
	}
	customerID, ok := m.promptInt("Customer ID: ")
	if !ok {
		return
	}

	if err := m.venue.CancelReservation(seatNumber, customerID); err != nil {
		m.log.Warn("cancellation refused",
			zap.Int("seat", seatNumber),
			zap.Int("customer_id", customerID),
			zap.Error(err))
		m.printf("%s\n", ErrorMessage(err))
		return
	}
	m.log.Info("reservation cancelled",
		zap.Int("seat", seatNumber),
		zap.Int("customer_id", customerID))
	m.printf("%s\n", CancelMessage)
}

func (m *Menu) showHistory() {
	customerID, ok := m.promptInt("Customer ID: ")
	if !ok {
		return
	}

	customer, entries, err := m.venue.History(customerID)
	if err != nil {
		m.printf("%s\n", ErrorMessage(err))
		return
	}
	m.printf("\nReservation history for %s:\n", customer.FullName())
	for i, entry := range entries {
		m.printf("%d. %s\n", i+1, HistoryLine(entry))
	}
}

func (m *Menu) exportHistory() {
	customerID, ok := m.promptInt("Customer ID: ")
	if !ok {
		return
	}

	customer, entries, err := m.venue.History(customerID)
	if err != nil {
		m.printf("%s\n", ErrorMessage(err))
		return
	}
	path, err := m.exporter.CustomerHistory(customer, entries)
	if err != nil {
		m.log.Error("history export failed", zap.Int("customer_id", customerID), zap.Error(err))
		m.printf("Export failed: %v\n", err)
		return
	}
	m.log.Info("history exported", zap.Int("customer_id", customerID), zap.String("path", path))
	m.printf("History exported to %s\n", path)
}

func (m *Menu) exportSeatState() {
	path, err := m.exporter.SeatState(m.venue.Seats())
	if err != nil {
		m.log.Error("seat state export failed", zap.Error(err))
		m.printf("Export failed: %v\n", err)
		return
	}
	m.log.Info("seat state exported", zap.String("path", path))
	m.printf("Seat state exported to %s\n", path)
}

// prompt reads one trimmed line; ok is false when input has ended.
func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptNonEmpty re-prompts until the user types something.
func (m *Menu) promptNonEmpty(label string) (string, bool) {
	for {
		text, ok := m.prompt(label)
		if !ok {
			return "", false
		}
		if text == "" {
			m.printf("Name cannot be empty\n")
			continue
		}
		return text, true
	}
}

// promptInt re-prompts until the user types a number. The core assumes
// well-typed ids, so validation lives here.
func (m *Menu) promptInt(label string) (int, bool) {
	for {
		text, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			m.printf("Please enter a number\n")
			continue
		}
		return n, true
	}
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
