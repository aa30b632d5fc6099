package database

import (
	"database/sql"
	"fmt"

	"github.com/Rounit002/citylibrary/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search   string
	Status   string
	BranchID string
	ShiftID  string
	Limit    int
	Offset   int
}

const studentColumns = `id, name, father_name, phone, email, address, aadhar_number,
		registration_no, gender, branch_id, shift_id, seat_id, locker_id,
		membership_start, membership_end,
		total_fee, amount_paid, due_amount, cash, online,
		status, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.FatherName, &s.Phone, &s.Email, &s.Address, &s.AadharNumber,
		&s.RegistrationNo, &s.Gender, &s.BranchID, &s.ShiftID, &s.SeatID, &s.LockerID,
		&s.MembershipStart, &s.MembershipEnd,
		&s.TotalFee, &s.AmountPaid, &s.DueAmount, &s.Cash, &s.Online,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudents returns students matching the filters.
func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE deleted_at IS NULL`
	var args []interface{}
	argIndex := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filters.Status)
		argIndex++
	}
	if filters.BranchID != "" {
		query += fmt.Sprintf(" AND branch_id = $%d", argIndex)
		args = append(args, filters.BranchID)
		argIndex++
	}
	if filters.ShiftID != "" {
		query += fmt.Sprintf(" AND shift_id = $%d", argIndex)
		args = append(args, filters.ShiftID)
		argIndex++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(` AND (LOWER(name) LIKE $%d
			OR LOWER(registration_no) LIKE $%d
			OR phone LIKE $%d)`, argIndex, argIndex+1, argIndex+2)
		pattern := "%" + filters.Search + "%"
		args = append(args, pattern, pattern, pattern)
		argIndex += 3
	}

	query += " ORDER BY name ASC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			continue
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID loads one student snapshot.
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	s, err := scanStudent(db.QueryRow(
		`SELECT `+studentColumns+` FROM students WHERE id = $1 AND deleted_at IS NULL`, studentID))
	if err == sql.ErrNoRows {
		return nil, ErrStudentNotFound
	}
	return s, err
}

// CreateStudent inserts the snapshot row and opens the student's first
// ledger row for the membership-start month, in one transaction. Any money
// already collected at registration is recorded on both.
func CreateStudent(db *sql.DB, s *models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	s.DueAmount = s.TotalFee - s.AmountPaid
	if s.DueAmount < 0 {
		s.DueAmount = 0
	}

	err = tx.QueryRow(
		`INSERT INTO students
		 (name, father_name, phone, email, address, aadhar_number, registration_no, gender,
		  branch_id, shift_id, seat_id, locker_id, membership_start, membership_end,
		  total_fee, amount_paid, due_amount, cash, online, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.FatherName, s.Phone, s.Email, s.Address, s.AadharNumber, s.RegistrationNo, s.Gender,
		s.BranchID, s.ShiftID, s.SeatID, s.LockerID, s.MembershipStart, s.MembershipEnd,
		s.TotalFee, s.AmountPaid, s.DueAmount, s.Cash, s.Online, s.Status).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert student: %v", err)
	}

	_, err = tx.Exec(
		`INSERT INTO student_membership_history
		 (student_id, name, phone, branch_id, shift_id, seat_id,
		  total_fee, amount_paid, due_amount, cash, online, month_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.Name, s.Phone, s.BranchID, s.ShiftID, s.SeatID,
		s.TotalFee, s.AmountPaid, s.DueAmount, s.Cash, s.Online,
		models.MonthStart(s.MembershipStart))
	if err != nil {
		return fmt.Errorf("failed to open membership ledger: %v", err)
	}

	return tx.Commit()
}

// UpdateStudent updates identity and assignment fields on the snapshot.
// Money fields are only touched by payment and billing flows.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	result, err := db.Exec(
		`UPDATE students
		 SET name = $1, father_name = $2, phone = $3, email = $4, address = $5,
			 aadhar_number = $6, gender = $7, branch_id = $8, shift_id = $9,
			 seat_id = $10, locker_id = $11, membership_start = $12, membership_end = $13,
			 updated_at = NOW()
		 WHERE id = $14 AND deleted_at IS NULL`,
		s.Name, s.FatherName, s.Phone, s.Email, s.Address,
		s.AadharNumber, s.Gender, s.BranchID, s.ShiftID,
		s.SeatID, s.LockerID, s.MembershipStart, s.MembershipEnd, s.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return ErrStudentNotFound
	}
	return err
}

// SetStudentStatus activates or deactivates a student. Deactivation frees
// the seat and locker.
func SetStudentStatus(db *sql.DB, studentID string, status models.StudentStatus) error {
	query := `UPDATE students SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
	if status == models.StudentInactive {
		query = `UPDATE students SET status = $1, seat_id = NULL, locker_id = NULL, updated_at = NOW()
				 WHERE id = $2 AND deleted_at IS NULL`
	}
	result, err := db.Exec(query, status, studentID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return ErrStudentNotFound
	}
	return err
}

// DeleteStudent soft deletes the snapshot and frees the seat/locker.
func DeleteStudent(db *sql.DB, studentID string) error {
	result, err := db.Exec(
		`UPDATE students SET deleted_at = NOW(), seat_id = NULL, locker_id = NULL
		 WHERE id = $1 AND deleted_at IS NULL`, studentID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return ErrStudentNotFound
	}
	return err
}
