package models

import "time"

// Locker is a numbered storage locker in a branch.
type Locker struct {
	ID           string     `json:"id"`
	BranchID     string     `json:"branch_id"`
	LockerNumber string     `json:"locker_number"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`

	StudentID   *string `json:"student_id,omitempty"`
	StudentName *string `json:"student_name,omitempty"`
}
