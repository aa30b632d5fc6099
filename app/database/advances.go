package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Rounit002/citylibrary/app/models"
)

// ErrAdvanceNotFound means the advance payment does not exist.
var ErrAdvanceNotFound = errors.New("advance payment not found")

// GetAdvancePayments lists advances, optionally for one student.
func GetAdvancePayments(db *sql.DB, studentID string) ([]*models.AdvancePayment, error) {
	query := `SELECT id, student_id, amount, method, payment_date, notes, created_at
			  FROM advance_payments`
	var args []interface{}
	if studentID != "" {
		query += ` WHERE student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY payment_date DESC, created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.AdvancePayment
	for rows.Next() {
		p := &models.AdvancePayment{}
		err := rows.Scan(&p.ID, &p.StudentID, &p.Amount, &p.Method,
			&p.PaymentDate, &p.Notes, &p.CreatedAt)
		if err != nil {
			continue
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreateAdvancePayment records an advance against a student.
func CreateAdvancePayment(db *sql.DB, p *models.AdvancePayment) error {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1 AND deleted_at IS NULL)`,
		p.StudentID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrStudentNotFound
	}

	err = db.QueryRow(
		`INSERT INTO advance_payments (student_id, amount, method, payment_date, notes)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		p.StudentID, p.Amount, p.Method, p.PaymentDate, p.Notes).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert advance payment: %v", err)
	}
	return nil
}

// DeleteAdvancePayment removes an advance row.
func DeleteAdvancePayment(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM advance_payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return ErrAdvanceNotFound
	}
	return err
}
