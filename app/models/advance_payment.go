package models

import "time"

// AdvancePayment is a simple ledger row for money taken ahead of billing.
type AdvancePayment struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"student_id"`
	Amount      float64       `json:"amount"`
	Method      PaymentMethod `json:"method"`
	PaymentDate time.Time     `json:"payment_date"`
	Notes       *string       `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
