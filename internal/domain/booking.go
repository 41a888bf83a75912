package domain

import "time"

// Booking is one recorded test-drive request. Records are immutable after
// creation and live only for the lifetime of the process.
type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Model     string    `json:"model"`
	Location  string    `json:"location"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}
