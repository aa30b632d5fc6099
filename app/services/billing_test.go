package services

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t testing.TB) *sql.DB {
	t.Helper()

	host := envDefault("PGHOST", "localhost")
	port := envDefault("PGPORT", "5432")
	user := envDefault("PGUSER", "postgres")
	password := os.Getenv("PGPASSWORD")
	dbname := envDefault("PGDATABASE", "citylibrary_test")

	connStr := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
	if password != "" {
		connStr += " password=" + password
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open database connection: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("postgres not available: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("migrations failed: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestOpenBillingMonth(t *testing.T) {
	db := setupTestDB(t)
	tag := uuid.NewString()[:8]

	var branchID, shiftID, studentID string
	err := db.QueryRow(
		`INSERT INTO branches (name, code) VALUES ($1, $2) RETURNING id`,
		"Rollover Branch "+tag, "RB-"+tag).Scan(&branchID)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
		db.Exec(`DELETE FROM branches WHERE id = $1`, branchID)
	})

	err = db.QueryRow(
		`INSERT INTO shifts (branch_id, name, start_time, end_time, monthly_fee)
		 VALUES ($1, 'Evening', '14:00', '20:00', 1200) RETURNING id`,
		branchID).Scan(&shiftID)
	require.NoError(t, err)

	err = db.QueryRow(
		`INSERT INTO students
		 (name, phone, registration_no, branch_id, shift_id,
		  membership_start, membership_end, total_fee, amount_paid, due_amount)
		 VALUES ('Sunita Devi', '9123456780', $1, $2, $3,
				 CURRENT_DATE - 90, CURRENT_DATE + 200, 1200, 1200, 0)
		 RETURNING id`,
		"REG-"+tag, branchID, shiftID).Scan(&studentID)
	require.NoError(t, err)

	now := time.Now()
	opened, err := OpenBillingMonth(db, now)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, opened, 1)

	// The student has a fresh ledger row carrying the shift fee
	var fee, paid, due float64
	err = db.QueryRow(
		`SELECT total_fee, amount_paid, due_amount FROM student_membership_history
		 WHERE student_id = $1 AND month_date = $2 AND prev_due_paid = false`,
		studentID, models.MonthStart(now)).Scan(&fee, &paid, &due)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, fee)
	assert.Equal(t, 0.0, paid)
	assert.Equal(t, 1200.0, due)

	// Snapshot is reset to the new month
	err = db.QueryRow(
		`SELECT total_fee, amount_paid, due_amount FROM students WHERE id = $1`,
		studentID).Scan(&fee, &paid, &due)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, fee)
	assert.Equal(t, 0.0, paid)
	assert.Equal(t, 1200.0, due)

	// A second run in the same month is a no-op for this student
	_, err = OpenBillingMonth(db, now)
	require.NoError(t, err)

	var count int
	err = db.QueryRow(
		`SELECT COUNT(*) FROM student_membership_history
		 WHERE student_id = $1 AND month_date = $2 AND prev_due_paid = false`,
		studentID, models.MonthStart(now)).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
