package database

import (
	"database/sql"
	"testing"

	"github.com/Rounit002/citylibrary/app/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBranch(t *testing.T, db *sql.DB) string {
	t.Helper()
	tag := uuid.NewString()[:8]

	var branchID string
	err := db.QueryRow(
		`INSERT INTO branches (name, code) VALUES ($1, $2) RETURNING id`,
		"Facility Branch "+tag, "FB-"+tag).Scan(&branchID)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM branches WHERE id = $1`, branchID)
	})
	return branchID
}

func TestUpdateSeat(t *testing.T) {
	db := setupTestDB(t)
	branchID := newTestBranch(t, db)

	seat := &models.Seat{BranchID: branchID, SeatNumber: "A-12", IsActive: true}
	require.NoError(t, CreateSeat(db, seat))
	t.Cleanup(func() { db.Exec(`DELETE FROM seats WHERE id = $1`, seat.ID) })

	seat.SeatNumber = "B-07"
	seat.IsActive = false
	require.NoError(t, UpdateSeat(db, seat))

	seats, err := GetSeats(db, branchID)
	require.NoError(t, err)
	require.Len(t, seats, 1)
	assert.Equal(t, "B-07", seats[0].SeatNumber)
	assert.False(t, seats[0].IsActive)
}

func TestUpdateSeatUnknown(t *testing.T) {
	db := setupTestDB(t)

	seat := &models.Seat{ID: uuid.NewString(), SeatNumber: "Z-99"}
	assert.ErrorIs(t, UpdateSeat(db, seat), ErrFacilityNotFound)
}

func TestUpdateLocker(t *testing.T) {
	db := setupTestDB(t)
	branchID := newTestBranch(t, db)

	locker := &models.Locker{BranchID: branchID, LockerNumber: "L-01", IsActive: true}
	require.NoError(t, CreateLocker(db, locker))
	t.Cleanup(func() { db.Exec(`DELETE FROM lockers WHERE id = $1`, locker.ID) })

	locker.LockerNumber = "L-15"
	require.NoError(t, UpdateLocker(db, locker))

	lockers, err := GetLockers(db, branchID)
	require.NoError(t, err)
	require.Len(t, lockers, 1)
	assert.Equal(t, "L-15", lockers[0].LockerNumber)
	assert.True(t, lockers[0].IsActive)
}

func TestUpdateLockerUnknown(t *testing.T) {
	db := setupTestDB(t)

	locker := &models.Locker{ID: uuid.NewString(), LockerNumber: "L-00"}
	assert.ErrorIs(t, UpdateLocker(db, locker), ErrFacilityNotFound)
}

func TestGetShiftByID(t *testing.T) {
	db := setupTestDB(t)
	branchID := newTestBranch(t, db)

	shift := &models.Shift{
		BranchID:   branchID,
		Name:       "Night",
		StartTime:  "20:00",
		EndTime:    "23:00",
		MonthlyFee: 700,
		IsActive:   true,
	}
	require.NoError(t, CreateShift(db, shift))
	t.Cleanup(func() { db.Exec(`DELETE FROM shifts WHERE id = $1`, shift.ID) })

	got, err := GetShiftByID(db, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, branchID, got.BranchID)
	assert.Equal(t, "Night", got.Name)
	assert.Equal(t, 700.0, got.MonthlyFee)

	_, err = GetShiftByID(db, uuid.NewString())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
