package domain

import "time"

// Person is an active-roster personnel record. Read-only from the linking and
// authorization flows; the roster itself is maintained out of band.
type Person struct {
	ID          int64     `json:"id"`
	Phone       string    `json:"phone"`
	FullName    string    `json:"full_name"`
	PrimaryRole string    `json:"primary_role"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
