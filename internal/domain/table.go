package domain

import "time"

// TableStatus represents whether a table is bookable
type TableStatus string

const (
	TableActive   TableStatus = "active"
	TableInactive TableStatus = "inactive"
)

// Table represents a bookable dining table
type Table struct {
	ID       int64
	Name     string
	Capacity int // мест за столом, >= 1
	Zone     string
	Status   TableStatus

	CreatedAt time.Time
}

// IsActive returns true if the table accepts reservations
func (t *Table) IsActive() bool {
	return t.Status == TableActive
}

// Fits returns true if the table seats the given party
func (t *Table) Fits(partySize int) bool {
	return t.Capacity >= partySize
}
