package database

import (
	"database/sql"
	"errors"

	"github.com/Rounit002/citylibrary/app/models"
)

// ErrFacilityNotFound covers missing branches, shifts, seats and lockers.
var ErrFacilityNotFound = errors.New("record not found")

// Branch queries

func GetBranches(db *sql.DB) ([]*models.Branch, error) {
	rows, err := db.Query(
		`SELECT id, name, code, address, is_active, created_at, updated_at
		 FROM branches WHERE deleted_at IS NULL ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*models.Branch
	for rows.Next() {
		b := &models.Branch{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.Address, &b.IsActive,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			continue
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func CreateBranch(db *sql.DB, b *models.Branch) error {
	return db.QueryRow(
		`INSERT INTO branches (name, code, address, is_active)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		b.Name, b.Code, b.Address, b.IsActive).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func UpdateBranch(db *sql.DB, b *models.Branch) error {
	result, err := db.Exec(
		`UPDATE branches SET name = $1, code = $2, address = $3, is_active = $4, updated_at = NOW()
		 WHERE id = $5 AND deleted_at IS NULL`,
		b.Name, b.Code, b.Address, b.IsActive, b.ID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func DeleteBranch(db *sql.DB, id string) error {
	result, err := db.Exec(
		`UPDATE branches SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// Shift queries

func GetShifts(db *sql.DB, branchID string) ([]*models.Shift, error) {
	query := `SELECT id, branch_id, name, start_time, end_time, monthly_fee, is_active,
			  created_at, updated_at
			  FROM shifts WHERE deleted_at IS NULL`
	var args []interface{}
	if branchID != "" {
		query += ` AND branch_id = $1`
		args = append(args, branchID)
	}
	query += ` ORDER BY start_time ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []*models.Shift
	for rows.Next() {
		s := &models.Shift{}
		if err := rows.Scan(&s.ID, &s.BranchID, &s.Name, &s.StartTime, &s.EndTime,
			&s.MonthlyFee, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			continue
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func GetShiftByID(db *sql.DB, id string) (*models.Shift, error) {
	s := &models.Shift{}
	err := db.QueryRow(
		`SELECT id, branch_id, name, start_time, end_time, monthly_fee, is_active,
		 created_at, updated_at
		 FROM shifts WHERE id = $1 AND deleted_at IS NULL`, id).
		Scan(&s.ID, &s.BranchID, &s.Name, &s.StartTime, &s.EndTime,
			&s.MonthlyFee, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	return s, err
}

func CreateShift(db *sql.DB, s *models.Shift) error {
	return db.QueryRow(
		`INSERT INTO shifts (branch_id, name, start_time, end_time, monthly_fee, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`,
		s.BranchID, s.Name, s.StartTime, s.EndTime, s.MonthlyFee, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateShift(db *sql.DB, s *models.Shift) error {
	result, err := db.Exec(
		`UPDATE shifts SET name = $1, start_time = $2, end_time = $3, monthly_fee = $4,
		 is_active = $5, updated_at = NOW()
		 WHERE id = $6 AND deleted_at IS NULL`,
		s.Name, s.StartTime, s.EndTime, s.MonthlyFee, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func DeleteShift(db *sql.DB, id string) error {
	result, err := db.Exec(
		`UPDATE shifts SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// Seat queries

// GetSeats lists seats with occupancy, optionally for one branch.
func GetSeats(db *sql.DB, branchID string) ([]*models.Seat, error) {
	query := `SELECT se.id, se.branch_id, se.seat_number, se.is_active,
			  se.created_at, se.updated_at, st.id, st.name
			  FROM seats se
			  LEFT JOIN students st ON st.seat_id = se.id AND st.deleted_at IS NULL
			  WHERE se.deleted_at IS NULL`
	var args []interface{}
	if branchID != "" {
		query += ` AND se.branch_id = $1`
		args = append(args, branchID)
	}
	query += ` ORDER BY se.seat_number ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []*models.Seat
	for rows.Next() {
		s := &models.Seat{}
		if err := rows.Scan(&s.ID, &s.BranchID, &s.SeatNumber, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt, &s.StudentID, &s.StudentName); err != nil {
			continue
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

func CreateSeat(db *sql.DB, s *models.Seat) error {
	return db.QueryRow(
		`INSERT INTO seats (branch_id, seat_number, is_active)
		 VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		s.BranchID, s.SeatNumber, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateSeat(db *sql.DB, s *models.Seat) error {
	result, err := db.Exec(
		`UPDATE seats SET seat_number = $1, is_active = $2, updated_at = NOW()
		 WHERE id = $3 AND deleted_at IS NULL`,
		s.SeatNumber, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func DeleteSeat(db *sql.DB, id string) error {
	result, err := db.Exec(
		`UPDATE seats SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// Locker queries

func GetLockers(db *sql.DB, branchID string) ([]*models.Locker, error) {
	query := `SELECT lk.id, lk.branch_id, lk.locker_number, lk.is_active,
			  lk.created_at, lk.updated_at, st.id, st.name
			  FROM lockers lk
			  LEFT JOIN students st ON st.locker_id = lk.id AND st.deleted_at IS NULL
			  WHERE lk.deleted_at IS NULL`
	var args []interface{}
	if branchID != "" {
		query += ` AND lk.branch_id = $1`
		args = append(args, branchID)
	}
	query += ` ORDER BY lk.locker_number ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lockers []*models.Locker
	for rows.Next() {
		l := &models.Locker{}
		if err := rows.Scan(&l.ID, &l.BranchID, &l.LockerNumber, &l.IsActive,
			&l.CreatedAt, &l.UpdatedAt, &l.StudentID, &l.StudentName); err != nil {
			continue
		}
		lockers = append(lockers, l)
	}
	return lockers, rows.Err()
}

func CreateLocker(db *sql.DB, l *models.Locker) error {
	return db.QueryRow(
		`INSERT INTO lockers (branch_id, locker_number, is_active)
		 VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		l.BranchID, l.LockerNumber, l.IsActive).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func UpdateLocker(db *sql.DB, l *models.Locker) error {
	result, err := db.Exec(
		`UPDATE lockers SET locker_number = $1, is_active = $2, updated_at = NOW()
		 WHERE id = $3 AND deleted_at IS NULL`,
		l.LockerNumber, l.IsActive, l.ID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func DeleteLocker(db *sql.DB, id string) error {
	result, err := db.Exec(
		`UPDATE lockers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return ErrFacilityNotFound
	}
	return err
}
