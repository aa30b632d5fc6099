package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthStart(t *testing.T) {
	got := MonthStart(time.Date(2025, 3, 17, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestIsCurrentMonth(t *testing.T) {
	now := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		monthDate time.Time
		want      bool
	}{
		{"same month", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"previous month", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"same month last year", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"next month", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &MembershipHistory{MonthDate: tt.monthDate}
			assert.Equal(t, tt.want, h.IsCurrentMonth(now))
		})
	}
}

func TestApplyCurrentMonthPayment(t *testing.T) {
	tests := []struct {
		name       string
		method     PaymentMethod
		amount     float64
		wantCash   float64
		wantOnline float64
	}{
		{"cash payment", PaymentCash, 300, 500, 100},
		{"online payment", PaymentOnline, 300, 200, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &MembershipHistory{
				TotalFee:   1000,
				Cash:       200,
				Online:     100,
				AmountPaid: 300,
				DueAmount:  700,
			}
			h.ApplyCurrentMonthPayment(tt.amount, tt.method)

			assert.Equal(t, tt.wantCash, h.Cash)
			assert.Equal(t, tt.wantOnline, h.Online)
			assert.Equal(t, 600.0, h.AmountPaid)
			assert.Equal(t, 400.0, h.DueAmount)
			assert.Equal(t, h.TotalFee, h.AmountPaid+h.DueAmount)
		})
	}
}

func TestApplyCurrentMonthPaymentClearsDue(t *testing.T) {
	h := &MembershipHistory{TotalFee: 500, DueAmount: 500}
	h.ApplyCurrentMonthPayment(500, PaymentCash)

	assert.Equal(t, 500.0, h.AmountPaid)
	assert.Equal(t, 0.0, h.DueAmount)
}

func TestSettlementRow(t *testing.T) {
	seatID := "seat-1"
	now := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)
	h := &MembershipHistory{
		StudentID: "student-1",
		Name:      "Ravi Kumar",
		Phone:     "9876543210",
		BranchID:  "branch-1",
		ShiftID:   "shift-1",
		SeatID:    &seatID,
		TotalFee:  1000,
		DueAmount: 400,
		MonthDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	row := h.SettlementRow(400, PaymentOnline, now)

	require.NotNil(t, row)
	assert.Equal(t, h.StudentID, row.StudentID)
	assert.Equal(t, h.Name, row.Name)
	assert.Equal(t, h.BranchID, row.BranchID)
	assert.Equal(t, h.ShiftID, row.ShiftID)
	assert.Equal(t, h.SeatID, row.SeatID)

	assert.Equal(t, 0.0, row.TotalFee)
	assert.Equal(t, 400.0, row.AmountPaid)
	assert.Equal(t, 0.0, row.DueAmount)
	assert.Equal(t, 400.0, row.Online)
	assert.Equal(t, 0.0, row.Cash)

	assert.True(t, row.PrevDuePaid)
	require.NotNil(t, row.SourceMonth)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *row.SourceMonth)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), row.MonthDate)
}

func TestStudentApplyPayment(t *testing.T) {
	s := &Student{
		TotalFee:   1000,
		Cash:       100,
		Online:     200,
		AmountPaid: 300,
		DueAmount:  700,
	}

	s.ApplyPayment(250, PaymentCash)
	assert.Equal(t, 350.0, s.Cash)
	assert.Equal(t, 550.0, s.AmountPaid)
	assert.Equal(t, 450.0, s.DueAmount)

	s.ApplyPayment(450, PaymentOnline)
	assert.Equal(t, 650.0, s.Online)
	assert.Equal(t, 1000.0, s.AmountPaid)
	assert.Equal(t, 0.0, s.DueAmount)
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentOnline.IsValid())
	assert.False(t, PaymentMethod("card").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}
