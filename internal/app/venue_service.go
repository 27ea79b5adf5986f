package app

import (
	"sort"
	"strings"
	"sync"

	"github.com/pwalczak/theater-box-office/internal/clock"
	"github.com/pwalczak/theater-box-office/internal/domain"
)

// VenueService is the aggregate root: it owns the seat catalog and the
// customer roster for its lifetime and is the only mutator of cross-entity
// state. The mutex keeps the seat flip and the matching history append a
// single logical transaction should callers ever run concurrently.
type VenueService struct {
	mu             sync.Mutex
	clock          clock.Clock
	seats          []domain.Seat
	customers      []*domain.Customer
	nextCustomerID int
}

func NewVenueService(clk clock.Clock, opts ...VenueServiceOption) *VenueService {
	svc := &VenueService{
		clock:          clk,
		seats:          domain.NewCatalog(),
		nextCustomerID: 1,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type VenueServiceOption func(*VenueService)

// WithSeats replaces the default catalog.
func WithSeats(seats []domain.Seat) VenueServiceOption {
	return func(s *VenueService) {
		if len(seats) > 0 {
			s.seats = seats
		}
	}
}

// RegisterCustomer adds a customer with the next sequential id and never
// fails; the driver validates input before calling. Ids start at 1 and are
// never reused.
func (s *VenueService) RegisterCustomer(firstName, lastName string) domain.Customer {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := &domain.Customer{
		ID:        s.nextCustomerID,
		FirstName: firstName,
		LastName:  lastName,
	}
	s.nextCustomerID++
	s.customers = append(s.customers, customer)
	return snapshotCustomer(customer)
}

// FindSeat returns a copy of the seat with the given number, or
// ErrSeatNotFound. Absence is an expected outcome for user-supplied numbers.
func (s *VenueService) FindSeat(number int) (domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat := s.seatByNumber(number)
	if seat == nil {
		return domain.Seat{}, domain.ErrSeatNotFound
	}
	return copySeat(*seat), nil
}

// FindCustomer returns a copy of the customer with the given id, or
// ErrCustomerNotFound.
func (s *VenueService) FindCustomer(id int) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.customerByID(id)
	if customer == nil {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return snapshotCustomer(customer), nil
}

// ReserveSeat claims the seat for the customer and appends the matching
// active record to the customer's history. Both mutations happen under the
// same lock; on any failure neither side changes.
func (s *VenueService) ReserveSeat(seatNumber, customerID int) (domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat := s.seatByNumber(seatNumber)
	if seat == nil {
		return domain.Seat{}, domain.ErrSeatNotFound
	}
	customer := s.customerByID(customerID)
	if customer == nil {
		return domain.Seat{}, domain.ErrCustomerNotFound
	}

	if err := seat.Reserve(customer.ID); err != nil {
		return domain.Seat{}, err
	}
	customer.AddReservation(seat.Number, s.clock.Now())
	return copySeat(*seat), nil
}

// CancelReservation releases the seat and flips the customer's most recent
// active record for it. Only the current holder may cancel; anyone else gets
// ErrNotHolder and no state changes.
func (s *VenueService) CancelReservation(seatNumber, customerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat := s.seatByNumber(seatNumber)
	if seat == nil {
		return domain.ErrSeatNotFound
	}
	customer := s.customerByID(customerID)
	if customer == nil {
		return domain.ErrCustomerNotFound
	}

	// Validate everything before either side mutates, so a refused
	// cancellation leaves both the seat and the history untouched.
	if !seat.HeldBy(customer.ID) {
		return domain.ErrNotHolder
	}
	if err := customer.CancelReservation(seat.Number, s.clock.Now()); err != nil {
		return err
	}
	return seat.Cancel(customer.ID)
}

// AvailableSeats returns copies of the free seats, ascending by number.
func (s *VenueService) AvailableSeats() []domain.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Seat, 0, len(s.seats))
	for _, seat := range s.seats {
		if seat.Available() {
			out = append(out, copySeat(seat))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Seats returns copies of the whole catalog in catalog order.
func (s *VenueService) Seats() []domain.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Seat, 0, len(s.seats))
	for _, seat := range s.seats {
		out = append(out, copySeat(seat))
	}
	return out
}

// HistoryEntry joins a reservation record with the seat it references, for
// display and export.
type HistoryEntry struct {
	Reservation domain.Reservation
	Seat        domain.Seat
}

// History returns the customer and their reservation records joined with
// seat data, oldest first.
func (s *VenueService) History(customerID int) (domain.Customer, []HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := s.customerByID(customerID)
	if customer == nil {
		return domain.Customer{}, nil, domain.ErrCustomerNotFound
	}

	entries := make([]HistoryEntry, 0, len(customer.History))
	for _, rec := range customer.History {
		entry := HistoryEntry{Reservation: copyReservation(rec)}
		if seat := s.seatByNumber(rec.SeatNumber); seat != nil {
			entry.Seat = copySeat(*seat)
		}
		entries = append(entries, entry)
	}
	return snapshotCustomer(customer), entries, nil
}

func (s *VenueService) seatByNumber(number int) *domain.Seat {
	for i := range s.seats {
		if s.seats[i].Number == number {
			return &s.seats[i]
		}
	}
	return nil
}

func (s *VenueService) customerByID(id int) *domain.Customer {
	for _, customer := range s.customers {
		if customer.ID == id {
			return customer
		}
	}
	return nil
}

// snapshotCustomer copies the customer including the history records, so
// callers never hold a view into venue-owned state.
func snapshotCustomer(c *domain.Customer) domain.Customer {
	out := *c
	out.History = make([]domain.Reservation, 0, len(c.History))
	for _, rec := range c.History {
		out.History = append(out.History, copyReservation(rec))
	}
	return out
}

// copySeat deep-copies the amenity list so the catalog cannot be changed
// through a returned seat.
func copySeat(s domain.Seat) domain.Seat {
	out := s
	out.Amenities = append([]string(nil), s.Amenities...)
	return out
}

// copyReservation deep-copies the cancellation stamp so a stored record
// cannot be changed through a returned one.
func copyReservation(r domain.Reservation) domain.Reservation {
	out := r
	if r.CancelledAt != nil {
		cancelled := *r.CancelledAt
		out.CancelledAt = &cancelled
	}
	return out
}
