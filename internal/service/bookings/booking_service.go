package bookings

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/anshiiika/autoelite-dealership/internal/kafka"
	"github.com/anshiiika/autoelite-dealership/internal/metrics"
	"github.com/anshiiika/autoelite-dealership/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmitInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Model    string `json:"model"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type BookingUseCase interface {
	Submit(ctx context.Context, input SubmitInput) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings repository.BookingRepository
	producer Producer
	topic    string
	logger   *zap.Logger
}

type BookingServiceOption func(*BookingService)

// WithProducer enables best-effort event publishing on accepted bookings.
func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, logger *zap.Logger, opts ...BookingServiceOption) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	service := &BookingService{bookings: bookings, logger: logger}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPhoneDigits = 7

// Submit validates a test-drive request and records it. Required-field
// presence is checked first, in field order, then email shape, then phone
// digit count. No record is written on any validation failure.
func (s *BookingService) Submit(ctx context.Context, input SubmitInput) (*domain.Booking, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"phone", input.Phone},
		{"model", input.Model},
		{"location", input.Location},
		{"date", input.Date},
		{"time", input.Time},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, domain.NewValidationError("Missing or invalid field: %s", f.name)
		}
	}

	if !emailPattern.MatchString(input.Email) {
		return nil, &domain.ValidationError{Message: "Invalid email"}
	}
	if countDigits(input.Phone) < minPhoneDigits {
		return nil, &domain.ValidationError{Message: "Invalid phone number"}
	}

	booking := &domain.Booking{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Model:     strings.TrimSpace(input.Model),
		Location:  strings.TrimSpace(input.Location),
		Date:      strings.TrimSpace(input.Date),
		Time:      strings.TrimSpace(input.Time),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.bookings.Append(ctx, booking); err != nil {
		return nil, err
	}
	metrics.BookingsCreatedTotal.Inc()

	if s.producer != nil && s.topic != "" {
		event := kafka.TestDriveEvent{
			Type:      "testdrive_requested",
			ID:        booking.ID,
			Name:      booking.Name,
			Email:     booking.Email,
			Model:     booking.Model,
			Location:  booking.Location,
			Date:      booking.Date,
			Time:      booking.Time,
			CreatedAt: booking.CreatedAt,
		}
		if err := s.producer.Publish(ctx, s.topic, booking.ID, event); err != nil {
			s.logger.Warn("publish booking event failed", zap.String("booking_id", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}

// List returns every recorded booking in insertion order.
func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

var _ BookingUseCase = (*BookingService)(nil)
