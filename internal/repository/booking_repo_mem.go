package repository

import (
	"context"
	"sync"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
)

type BookingRepository interface {
	Append(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
}

// InMemoryBookingRepository holds bookings for the lifetime of the process.
// Records are append-only and returned in insertion order. The mutex matters:
// gin serves requests concurrently.
type InMemoryBookingRepository struct {
	mu       sync.Mutex
	bookings []domain.Booking
}

func NewInMemoryBookingRepository() *InMemoryBookingRepository {
	return &InMemoryBookingRepository{}
}

func (r *InMemoryBookingRepository) Append(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *InMemoryBookingRepository) List(_ context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

var _ BookingRepository = (*InMemoryBookingRepository)(nil)
