package domain

import "time"

// Customer represents a returning guest identified by email or phone
type Customer struct {
	ID       int64
	FullName string
	Phone    *string
	Email    *string
	Notes    *string

	CreatedAt time.Time
}
