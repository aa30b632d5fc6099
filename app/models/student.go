package models

import "time"

// Student is the mutable membership snapshot: one row per student holding
// the current month's fee state. History lives in student_membership_history.
type Student struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	FatherName      string        `json:"father_name"`
	Phone           string        `json:"phone"`
	Email           *string       `json:"email,omitempty"`
	Address         *string       `json:"address,omitempty"`
	AadharNumber    *string       `json:"aadhar_number,omitempty"`
	RegistrationNo  string        `json:"registration_no"`
	Gender          Gender        `json:"gender"`
	BranchID        string        `json:"branch_id"`
	ShiftID         string        `json:"shift_id"`
	SeatID          *string       `json:"seat_id,omitempty"`
	LockerID        *string       `json:"locker_id,omitempty"`
	MembershipStart time.Time     `json:"membership_start"`
	MembershipEnd   time.Time     `json:"membership_end"`
	TotalFee        float64       `json:"total_fee"`
	AmountPaid      float64       `json:"amount_paid"`
	DueAmount       float64       `json:"due_amount"`
	Cash            float64       `json:"cash"`
	Online          float64       `json:"online"`
	Status          StudentStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DeletedAt       *time.Time    `json:"deleted_at,omitempty"`
}

// ApplyPayment adds a payment to the snapshot's cumulative totals.
func (s *Student) ApplyPayment(amount float64, method PaymentMethod) {
	if method == PaymentOnline {
		s.Online += amount
	} else {
		s.Cash += amount
	}
	s.AmountPaid += amount
	s.DueAmount -= amount
	if s.DueAmount < 0 {
		s.DueAmount = 0
	}
}
