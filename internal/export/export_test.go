package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalczak/theater-box-office/internal/app"
	"github.com/pwalczak/theater-box-office/internal/clock"
	"github.com/pwalczak/theater-box-office/internal/domain"
)

func TestExporter_CustomerHistory(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	exporter := NewExporter(dir, clock.NewFixed(now))

	seat := domain.NewSeat(5, domain.SeatStandard, 50)
	created := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	cancelled := created.Add(5 * time.Minute)

	customer := domain.Customer{ID: 1, FirstName: "Anna", LastName: "Kowalska"}
	entries := []app.HistoryEntry{
		{
			Reservation: domain.Reservation{SeatNumber: 5, Status: domain.ReservationActive, CreatedAt: created},
			Seat:        seat,
		},
		{
			Reservation: domain.Reservation{SeatNumber: 5, Status: domain.ReservationCancelled, CreatedAt: created, CancelledAt: &cancelled},
			Seat:        seat,
		},
	}

	path, err := exporter.CustomerHistory(customer, entries)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "reservations_1_202603011830.txt"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Reservation history for customer 1\n"+
			"Name: Anna Kowalska\n"+
			"============================================\n"+
			"2026-03-01 18:00:00 | Seat 5 (Standard): Price: 50.00 | Status: active\n"+
			"2026-03-01 18:00:00 | Seat 5 (Standard): Price: 50.00 | Status: cancelled\n",
		string(body))
}

func TestExporter_SeatState(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	exporter := NewExporter(dir, clock.NewFixed(now))

	free := domain.NewSeat(1, domain.SeatStandard, 50)
	taken := domain.NewSeat(2, domain.SeatStandard, 50)
	require.NoError(t, taken.Reserve(7))

	path, err := exporter.SeatState([]domain.Seat{free, taken})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "seat_state_202603011830.txt"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Seat state\n"+
			"============================================\n"+
			"Seat 1 (Standard): Price: 50.00 | Status: Available\n"+
			"Seat 2 (Standard): Price: 50.00 | Status: Taken by customer 7\n",
		string(body))
}

func TestExporter_WriteFailure(t *testing.T) {
	exporter := NewExporter(filepath.Join(t.TempDir(), "missing"), clock.NewSystem())

	_, err := exporter.SeatState(nil)
	assert.Error(t, err)
}
