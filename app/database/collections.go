package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Rounit002/citylibrary/app/models"
)

var (
	// ErrRecordNotFound means the targeted history row does not exist.
	ErrRecordNotFound = errors.New("collection record not found")
	// ErrStudentNotFound means the row's student snapshot is missing.
	ErrStudentNotFound = errors.New("student not found")
	// ErrExceedsDue means the payment is larger than the outstanding due.
	ErrExceedsDue = errors.New("payment amount exceeds due amount")
)

const historyColumns = `id, student_id, name, phone, branch_id, shift_id, seat_id,
		total_fee, amount_paid, due_amount, cash, online,
		month_date, prev_due_paid, source_month, created_at, updated_at`

func scanHistory(row interface{ Scan(...interface{}) error }) (*models.MembershipHistory, error) {
	h := &models.MembershipHistory{}
	err := row.Scan(
		&h.ID, &h.StudentID, &h.Name, &h.Phone, &h.BranchID, &h.ShiftID, &h.SeatID,
		&h.TotalFee, &h.AmountPaid, &h.DueAmount, &h.Cash, &h.Online,
		&h.MonthDate, &h.PrevDuePaid, &h.SourceMonth, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// SettleDuePayment applies a payment against one ledger row inside a single
// transaction. A payment on the current month's row updates that row in
// place; a payment on an older month's row leaves its fee untouched, clears
// the paid portion of its due and books the money on a fresh current-month
// row flagged prev_due_paid. The student snapshot is kept consistent in the
// same transaction. Both rows are locked for the duration.
func SettleDuePayment(db *sql.DB, historyID string, amount float64, method models.PaymentMethod) (*models.MembershipHistory, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	h, err := scanHistory(tx.QueryRow(
		`SELECT `+historyColumns+` FROM student_membership_history
		 WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, historyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to load collection record: %v", err)
	}

	if amount > h.DueAmount {
		return nil, ErrExceedsDue
	}

	student := &models.Student{}
	err = tx.QueryRow(
		`SELECT id, total_fee, amount_paid, due_amount, cash, online
		 FROM students WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, h.StudentID).
		Scan(&student.ID, &student.TotalFee, &student.AmountPaid,
			&student.DueAmount, &student.Cash, &student.Online)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student: %v", err)
	}

	now := time.Now()
	var result *models.MembershipHistory

	if h.IsCurrentMonth(now) {
		// Same-month payment: book it on the row itself and apply the same
		// delta to the snapshot, so settlements taken earlier in the month
		// are not lost from the snapshot totals.
		h.ApplyCurrentMonthPayment(amount, method)

		_, err = tx.Exec(
			`UPDATE student_membership_history
			 SET cash = $1, online = $2, amount_paid = $3, due_amount = $4, updated_at = NOW()
			 WHERE id = $5`,
			h.Cash, h.Online, h.AmountPaid, h.DueAmount, h.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update collection record: %v", err)
		}

		student.ApplyPayment(amount, method)
		_, err = tx.Exec(
			`UPDATE students
			 SET cash = $1, online = $2, amount_paid = $3, due_amount = $4, updated_at = NOW()
			 WHERE id = $5`,
			student.Cash, student.Online, student.AmountPaid, student.DueAmount, student.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update student: %v", err)
		}

		result = h
	} else {
		// Cross-month settlement: the old row only loses the settled due,
		// its fee figures stay as billed.
		_, err = tx.Exec(
			`UPDATE student_membership_history
			 SET due_amount = due_amount - $1, updated_at = NOW()
			 WHERE id = $2`,
			amount, h.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update collection record: %v", err)
		}

		student.ApplyPayment(amount, method)
		_, err = tx.Exec(
			`UPDATE students
			 SET cash = $1, online = $2, amount_paid = $3, due_amount = $4, updated_at = NOW()
			 WHERE id = $5`,
			student.Cash, student.Online, student.AmountPaid, student.DueAmount, student.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update student: %v", err)
		}

		settlement := h.SettlementRow(amount, method, now)
		err = tx.QueryRow(
			`INSERT INTO student_membership_history
			 (student_id, name, phone, branch_id, shift_id, seat_id,
			  total_fee, amount_paid, due_amount, cash, online,
			  month_date, prev_due_paid, source_month)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			 RETURNING id, created_at, updated_at`,
			settlement.StudentID, settlement.Name, settlement.Phone,
			settlement.BranchID, settlement.ShiftID, settlement.SeatID,
			settlement.TotalFee, settlement.AmountPaid, settlement.DueAmount,
			settlement.Cash, settlement.Online,
			settlement.MonthDate, settlement.PrevDuePaid, settlement.SourceMonth).
			Scan(&settlement.ID, &settlement.CreatedAt, &settlement.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert settlement record: %v", err)
		}

		result = settlement
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetHistoryByID loads a single ledger row.
func GetHistoryByID(db *sql.DB, historyID string) (*models.MembershipHistory, error) {
	h, err := scanHistory(db.QueryRow(
		`SELECT `+historyColumns+` FROM student_membership_history
		 WHERE id = $1 AND deleted_at IS NULL`, historyID))
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	return h, err
}

// CollectionFilters narrows history listings.
type CollectionFilters struct {
	Month    time.Time // zero value means all months
	BranchID string
	DuesOnly bool
}

// ListCollections returns ledger rows, newest billing month first. Identity
// columns are denormalized on the ledger so no join is needed.
func ListCollections(db *sql.DB, filters CollectionFilters) ([]*models.MembershipHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM student_membership_history
			  WHERE deleted_at IS NULL`
	var args []interface{}
	argIndex := 1

	if !filters.Month.IsZero() {
		query += fmt.Sprintf(" AND month_date >= $%d AND month_date < $%d", argIndex, argIndex+1)
		start := models.MonthStart(filters.Month)
		args = append(args, start, start.AddDate(0, 1, 0))
		argIndex += 2
	}
	if filters.BranchID != "" {
		query += fmt.Sprintf(" AND branch_id = $%d", argIndex)
		args = append(args, filters.BranchID)
		argIndex++
	}
	if filters.DuesOnly {
		query += " AND due_amount > 0"
	}

	query += " ORDER BY month_date DESC, created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.MembershipHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			continue
		}
		records = append(records, h)
	}
	return records, rows.Err()
}

// DeleteHistory soft deletes one ledger row.
func DeleteHistory(db *sql.DB, historyID string) error {
	result, err := db.Exec(
		`UPDATE student_membership_history SET deleted_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`, historyID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return ErrRecordNotFound
	}
	return err
}
