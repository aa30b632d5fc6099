package models

import "time"

// MembershipHistory is one append-only ledger row per billing month per
// student. MonthDate anchors the row to its billing month; rows created by
// settling an older month's due carry PrevDuePaid=true and SourceMonth set
// to the month the due originated in.
type MembershipHistory struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	BranchID    string     `json:"branch_id"`
	ShiftID     string     `json:"shift_id"`
	SeatID      *string    `json:"seat_id,omitempty"`
	TotalFee    float64    `json:"total_fee"`
	AmountPaid  float64    `json:"amount_paid"`
	DueAmount   float64    `json:"due_amount"`
	Cash        float64    `json:"cash"`
	Online      float64    `json:"online"`
	MonthDate   time.Time  `json:"month_date"`
	PrevDuePaid bool       `json:"prev_due_paid"`
	SourceMonth *time.Time `json:"source_month,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// MonthStart truncates t to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// IsCurrentMonth reports whether the row's billing month is the month of now.
func (h *MembershipHistory) IsCurrentMonth(now time.Time) bool {
	return h.MonthDate.Year() == now.Year() && h.MonthDate.Month() == now.Month()
}

// ApplyCurrentMonthPayment records a same-month payment on the row itself,
// keeping amount_paid + due_amount == total_fee.
func (h *MembershipHistory) ApplyCurrentMonthPayment(amount float64, method PaymentMethod) {
	if method == PaymentOnline {
		h.Online += amount
	} else {
		h.Cash += amount
	}
	h.AmountPaid = h.Cash + h.Online
	h.DueAmount = h.TotalFee - h.AmountPaid
	if h.DueAmount < 0 {
		h.DueAmount = 0
	}
}

// SettlementRow builds the synthetic current-month row recording that a due
// from this row's month was paid now. The new row carries no fee of its own.
func (h *MembershipHistory) SettlementRow(amount float64, method PaymentMethod, now time.Time) *MembershipHistory {
	source := MonthStart(h.MonthDate)
	row := &MembershipHistory{
		StudentID:   h.StudentID,
		Name:        h.Name,
		Phone:       h.Phone,
		BranchID:    h.BranchID,
		ShiftID:     h.ShiftID,
		SeatID:      h.SeatID,
		TotalFee:    0,
		AmountPaid:  amount,
		DueAmount:   0,
		MonthDate:   MonthStart(now),
		PrevDuePaid: true,
		SourceMonth: &source,
	}
	if method == PaymentOnline {
		row.Online = amount
	} else {
		row.Cash = amount
	}
	return row
}
