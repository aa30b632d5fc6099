package database

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Rounit002/citylibrary/app/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to a PostgreSQL database for testing and skips the
// test if none is reachable.
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

	if err := RunMigrations(db); err != nil {
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

type fixture struct {
	branchID  string
	shiftID   string
	studentID string
}

// newFixture creates a branch, shift and student with a clean snapshot
// (fee 1000, nothing paid). Rows are removed on cleanup.
func newFixture(t *testing.T, db *sql.DB) *fixture {
	t.Helper()
	f := &fixture{}
	tag := uuid.NewString()[:8]

	err := db.QueryRow(
		`INSERT INTO branches (name, code) VALUES ($1, $2) RETURNING id`,
		"Test Branch "+tag, "TB-"+tag).Scan(&f.branchID)
	require.NoError(t, err)

	err = db.QueryRow(
		`INSERT INTO shifts (branch_id, name, start_time, end_time, monthly_fee)
		 VALUES ($1, 'Morning', '06:00', '12:00', 1000) RETURNING id`,
		f.branchID).Scan(&f.shiftID)
	require.NoError(t, err)

	err = db.QueryRow(
		`INSERT INTO students
		 (name, phone, registration_no, branch_id, shift_id,
		  membership_start, membership_end, total_fee, amount_paid, due_amount)
		 VALUES ('Ravi Kumar', '9876543210', $1, $2, $3,
				 CURRENT_DATE - 60, CURRENT_DATE + 300, 1000, 0, 1000)
		 RETURNING id`,
		"REG-"+tag, f.branchID, f.shiftID).Scan(&f.studentID)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Exec(`DELETE FROM students WHERE id = $1`, f.studentID)
		db.Exec(`DELETE FROM branches WHERE id = $1`, f.branchID)
	})
	return f
}

// insertHistory opens a ledger row for the given month with the given due.
func (f *fixture) insertHistory(t *testing.T, db *sql.DB, month time.Time, fee, paid float64) string {
	t.Helper()
	var id string
	err := db.QueryRow(
		`INSERT INTO student_membership_history
		 (student_id, name, phone, branch_id, shift_id, total_fee, amount_paid, due_amount, cash, month_date)
		 VALUES ($1, 'Ravi Kumar', '9876543210', $2, $3, $4, $5, $6, $5, $7)
		 RETURNING id`,
		f.studentID, f.branchID, f.shiftID, fee, paid, fee-paid, models.MonthStart(month)).Scan(&id)
	require.NoError(t, err)
	return id
}

func (f *fixture) snapshot(t *testing.T, db *sql.DB) *models.Student {
	t.Helper()
	s, err := GetStudentByID(db, f.studentID)
	require.NoError(t, err)
	return s
}

func TestSettleDuePaymentSameMonth(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	historyID := f.insertHistory(t, db, time.Now(), 1000, 0)

	row, err := SettleDuePayment(db, historyID, 400, models.PaymentCash)
	require.NoError(t, err)

	// Payment lands on the same row
	assert.Equal(t, historyID, row.ID)
	assert.Equal(t, 400.0, row.Cash)
	assert.Equal(t, 400.0, row.AmountPaid)
	assert.Equal(t, 600.0, row.DueAmount)
	assert.Equal(t, 1000.0, row.TotalFee)
	assert.False(t, row.PrevDuePaid)

	// Snapshot mirrors the row
	s := f.snapshot(t, db)
	assert.Equal(t, 400.0, s.Cash)
	assert.Equal(t, 400.0, s.AmountPaid)
	assert.Equal(t, 600.0, s.DueAmount)
	assert.Equal(t, s.TotalFee, s.AmountPaid+s.DueAmount)
}

func TestSettleDuePaymentPreviousMonth(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	prevMonth := time.Now().AddDate(0, -1, 0)
	oldID := f.insertHistory(t, db, prevMonth, 1000, 500)

	row, err := SettleDuePayment(db, oldID, 300, models.PaymentOnline)
	require.NoError(t, err)

	// A fresh settlement row is created for the current month
	assert.NotEqual(t, oldID, row.ID)
	assert.Equal(t, 0.0, row.TotalFee)
	assert.Equal(t, 300.0, row.AmountPaid)
	assert.Equal(t, 300.0, row.Online)
	assert.Equal(t, 0.0, row.DueAmount)
	assert.True(t, row.PrevDuePaid)
	require.NotNil(t, row.SourceMonth)
	assert.Equal(t, models.MonthStart(prevMonth).Format("2006-01-02"),
		row.SourceMonth.Format("2006-01-02"))
	assert.True(t, row.IsCurrentMonth(time.Now()))

	// The old row only loses the settled due; its fee figures stay as billed
	old, err := GetHistoryByID(db, oldID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, old.TotalFee)
	assert.Equal(t, 500.0, old.AmountPaid)
	assert.Equal(t, 200.0, old.DueAmount)

	// Snapshot accumulates the settlement
	s := f.snapshot(t, db)
	assert.Equal(t, 300.0, s.Online)
	assert.Equal(t, 300.0, s.AmountPaid)
	assert.Equal(t, 700.0, s.DueAmount)
}

func TestSettleDuePaymentRejectsOverpayment(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	historyID := f.insertHistory(t, db, time.Now().AddDate(0, -1, 0), 1000, 500)

	_, err := SettleDuePayment(db, historyID, 700, models.PaymentCash)
	assert.ErrorIs(t, err, ErrExceedsDue)

	// No state change on the row
	row, err := GetHistoryByID(db, historyID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, row.AmountPaid)
	assert.Equal(t, 500.0, row.DueAmount)

	// No state change on the snapshot
	s := f.snapshot(t, db)
	assert.Equal(t, 0.0, s.AmountPaid)
	assert.Equal(t, 1000.0, s.DueAmount)

	// No settlement row appeared
	records, err := ListCollections(db, CollectionFilters{Month: time.Now()})
	require.NoError(t, err)
	for _, r := range records {
		if r.StudentID == f.studentID {
			t.Errorf("unexpected current-month row %s", r.ID)
		}
	}
}

func TestSettleDuePaymentUnknownRecord(t *testing.T) {
	db := setupTestDB(t)

	_, err := SettleDuePayment(db, uuid.NewString(), 100, models.PaymentCash)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSnapshotTotalsAcrossPayments(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	currentID := f.insertHistory(t, db, time.Now(), 1000, 0)
	oldID := f.insertHistory(t, db, time.Now().AddDate(0, -2, 0), 800, 300)

	_, err := SettleDuePayment(db, currentID, 250, models.PaymentCash)
	require.NoError(t, err)
	_, err = SettleDuePayment(db, oldID, 500, models.PaymentOnline)
	require.NoError(t, err)
	_, err = SettleDuePayment(db, currentID, 150, models.PaymentOnline)
	require.NoError(t, err)

	// Snapshot totals equal the sum of payments applied across all rows
	s := f.snapshot(t, db)
	assert.Equal(t, 900.0, s.AmountPaid)
	assert.Equal(t, 250.0, s.Cash)
	assert.Equal(t, 650.0, s.Online)

	current, err := GetHistoryByID(db, currentID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, current.AmountPaid)
	assert.Equal(t, 600.0, current.DueAmount)

	old, err := GetHistoryByID(db, oldID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, old.DueAmount)
	assert.Equal(t, 300.0, old.AmountPaid)
}

func TestListCollectionsFilters(t *testing.T) {
	db := setupTestDB(t)
	f := newFixture(t, db)
	f.insertHistory(t, db, time.Now(), 1000, 0)
	f.insertHistory(t, db, time.Now().AddDate(0, -1, 0), 1000, 1000)

	records, err := ListCollections(db, CollectionFilters{
		Month:    time.Now(),
		BranchID: f.branchID,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, f.studentID, records[0].StudentID)

	dues, err := ListCollections(db, CollectionFilters{
		BranchID: f.branchID,
		DuesOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, dues, 1)
	assert.Equal(t, 1000.0, dues[0].DueAmount)
}
