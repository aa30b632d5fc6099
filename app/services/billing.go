package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Rounit002/citylibrary/app/models"
)

// OpenBillingMonth opens the billing month containing now: every active
// student whose membership covers it and who has no regular ledger row for
// it gets one carrying their shift's monthly fee, and their snapshot is
// reset to the fresh month's figures. Older unpaid dues stay on their own
// ledger rows. Safe to call more than once per month.
func OpenBillingMonth(db *sql.DB, now time.Time) (int, error) {
	monthStart := models.MonthStart(now)

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`
		INSERT INTO student_membership_history
			(student_id, name, phone, branch_id, shift_id, seat_id,
			 total_fee, amount_paid, due_amount, cash, online, month_date)
		SELECT s.id, s.name, s.phone, s.branch_id, s.shift_id, s.seat_id,
			   sh.monthly_fee, 0, sh.monthly_fee, 0, 0, $1
		FROM students s
		JOIN shifts sh ON sh.id = s.shift_id
		WHERE s.status = 'active'
		  AND s.deleted_at IS NULL
		  AND s.membership_end >= $1
		  AND NOT EXISTS (
			SELECT 1 FROM student_membership_history h
			WHERE h.student_id = s.id
			  AND h.month_date = $1
			  AND h.prev_due_paid = false
			  AND h.deleted_at IS NULL
		  )
		RETURNING student_id, total_fee`, monthStart)
	if err != nil {
		return 0, fmt.Errorf("failed to open ledger rows: %v", err)
	}

	type billed struct {
		studentID string
		fee       float64
	}
	var billedStudents []billed
	for rows.Next() {
		var b billed
		if err := rows.Scan(&b.studentID, &b.fee); err != nil {
			rows.Close()
			return 0, err
		}
		billedStudents = append(billedStudents, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	// Only students billed in this call get their snapshot reset, so a
	// rerun within the month never wipes payments already taken.
	for _, b := range billedStudents {
		_, err = tx.Exec(`
			UPDATE students
			SET total_fee = $1, amount_paid = 0, due_amount = $1,
				cash = 0, online = 0, updated_at = NOW()
			WHERE id = $2`, b.fee, b.studentID)
		if err != nil {
			return 0, fmt.Errorf("failed to reset snapshot: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(billedStudents), nil
}
