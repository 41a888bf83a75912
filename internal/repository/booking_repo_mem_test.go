package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryBookingRepository_AppendAndList(t *testing.T) {
	repo := NewInMemoryBookingRepository()
	ctx := context.Background()

	first := &domain.Booking{ID: "a", Name: "Priya"}
	second := &domain.Booking{ID: "b", Name: "Rahul"}

	assert.NoError(t, repo.Append(ctx, first))
	assert.NoError(t, repo.Append(ctx, second))

	bookings, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, "a", bookings[0].ID)
	assert.Equal(t, "b", bookings[1].ID)
}

func TestInMemoryBookingRepository_ListCopyIsIsolated(t *testing.T) {
	repo := NewInMemoryBookingRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Append(ctx, &domain.Booking{ID: "a", Name: "Priya"}))

	bookings, _ := repo.List(ctx)
	bookings[0].Name = "changed"

	again, _ := repo.List(ctx)
	assert.Equal(t, "Priya", again[0].Name)
}

func TestInMemoryBookingRepository_ConcurrentAppends(t *testing.T) {
	repo := NewInMemoryBookingRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Append(ctx, &domain.Booking{ID: fmt.Sprintf("b-%d", i)})
		}(i)
	}
	wg.Wait()

	bookings, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 50)
}
