package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Rounit002/citylibrary/app/models"
)

// GetDashboardStats returns statistics for the admin dashboard
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	// 1. Student counts
	err := db.QueryRow(
		`SELECT COUNT(*), COUNT(CASE WHEN status = 'active' THEN 1 END)
		 FROM students WHERE deleted_at IS NULL`).
		Scan(&stats.TotalStudents, &stats.ActiveStudents)
	if err != nil {
		return nil, err
	}

	// 2. Branches
	err = db.QueryRow(
		`SELECT COUNT(*) FROM branches WHERE deleted_at IS NULL AND is_active = true`).
		Scan(&stats.TotalBranches)
	if err != nil {
		return nil, err
	}

	// 3. Seat occupancy
	err = db.QueryRow(`
		SELECT COUNT(*),
			   COUNT(CASE WHEN st.id IS NOT NULL THEN 1 END)
		FROM seats se
		LEFT JOIN students st ON st.seat_id = se.id AND st.deleted_at IS NULL
		WHERE se.deleted_at IS NULL AND se.is_active = true
	`).Scan(&stats.TotalSeats, &stats.OccupiedSeats)
	if err != nil {
		return nil, err
	}

	// 4. Current month collection, cash/online split
	monthStart := models.MonthStart(time.Now())
	err = db.QueryRow(`
		SELECT COALESCE(SUM(amount_paid), 0), COALESCE(SUM(cash), 0), COALESCE(SUM(online), 0)
		FROM student_membership_history
		WHERE deleted_at IS NULL AND month_date >= $1 AND month_date < $2
	`, monthStart, monthStart.AddDate(0, 1, 0)).
		Scan(&stats.MonthCollection, &stats.MonthCash, &stats.MonthOnline)
	if err != nil {
		return nil, err
	}

	// 5. Outstanding dues across all months
	err = db.QueryRow(`
		SELECT COALESCE(SUM(due_amount), 0)
		FROM student_membership_history
		WHERE deleted_at IS NULL AND due_amount > 0
	`).Scan(&stats.TotalDue)
	if err != nil {
		return nil, err
	}

	// 6. Advance balance held
	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM advance_payments`).
		Scan(&stats.AdvanceBalance)
	if err != nil {
		return nil, err
	}

	stats.RecentActivities = getRecentActivities(db)
	return stats, nil
}

func getRecentActivities(db *sql.DB) []models.Activity {
	activities := []models.Activity{}

	rows, err := db.Query(`
		SELECT name, amount_paid, prev_due_paid, created_at
		FROM student_membership_history
		WHERE deleted_at IS NULL AND amount_paid > 0
		ORDER BY created_at DESC
		LIMIT 10
	`)
	if err != nil {
		return activities
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var amount float64
		var prevDuePaid bool
		var createdAt time.Time
		if err := rows.Scan(&name, &amount, &prevDuePaid, &createdAt); err != nil {
			continue
		}

		a := models.Activity{
			Type:        "payment",
			Title:       fmt.Sprintf("Payment from %s", name),
			Description: fmt.Sprintf("Received %.2f", amount),
			TimeAgo:     timeAgo(createdAt),
			RawTime:     createdAt,
		}
		if prevDuePaid {
			a.Type = "due_settlement"
			a.Title = fmt.Sprintf("Due cleared by %s", name)
		}
		activities = append(activities, a)
	}
	return activities
}

func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}
