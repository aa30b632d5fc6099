package models

import "time"

// Seat is a numbered study seat in a branch.
type Seat struct {
	ID         string     `json:"id"`
	BranchID   string     `json:"branch_id"`
	SeatNumber string     `json:"seat_number"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`

	// Occupancy info populated by list queries
	StudentID   *string `json:"student_id,omitempty"`
	StudentName *string `json:"student_name,omitempty"`
}
