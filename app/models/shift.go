package models

import "time"

// Shift is a bookable time window in a branch with its monthly fee.
type Shift struct {
	ID         string     `json:"id"`
	BranchID   string     `json:"branch_id"`
	Name       string     `json:"name"`
	StartTime  string     `json:"start_time"` // HH:MM, 24h
	EndTime    string     `json:"end_time"`
	MonthlyFee float64    `json:"monthly_fee"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
