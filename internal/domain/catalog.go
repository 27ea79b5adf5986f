package domain

// Catalog shape of the venue: 50 seats numbered contiguously from 1, every
// category priced off the same base rate.
const (
	StandardSeatCount   = 30
	PremiumSeatCount    = 10
	AccessibleSeatCount = 10
	TotalSeatCount      = StandardSeatCount + PremiumSeatCount + AccessibleSeatCount

	BaseSeatPrice = 50.0
)

var premiumAmenities = []string{"lounge access", "waiter service"}

const accessibleNote = "wheelchair ramp"

// NewCatalog builds the fixed seat catalog: seats 1-30 Standard, 31-40
// Premium, 41-50 Accessible. Seat numbers are assigned once and never reused.
func NewCatalog() []Seat {
	seats := make([]Seat, 0, TotalSeatCount)
	for n := 1; n <= StandardSeatCount; n++ {
		seats = append(seats, NewSeat(n, SeatStandard, BaseSeatPrice))
	}
	for n := StandardSeatCount + 1; n <= StandardSeatCount+PremiumSeatCount; n++ {
		seat := NewSeat(n, SeatPremium, BaseSeatPrice)
		seat.Amenities = append([]string(nil), premiumAmenities...)
		seats = append(seats, seat)
	}
	for n := StandardSeatCount + PremiumSeatCount + 1; n <= TotalSeatCount; n++ {
		seat := NewSeat(n, SeatAccessible, BaseSeatPrice)
		seat.Accessibility = accessibleNote
		seats = append(seats, seat)
	}
	return seats
}
