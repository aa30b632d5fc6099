package models

import "time"

type DashboardStats struct {
	TotalStudents    int        `json:"total_students"`
	ActiveStudents   int        `json:"active_students"`
	TotalBranches    int        `json:"total_branches"`
	TotalSeats       int        `json:"total_seats"`
	OccupiedSeats    int        `json:"occupied_seats"`
	MonthCollection  float64    `json:"month_collection"`
	MonthCash        float64    `json:"month_cash"`
	MonthOnline      float64    `json:"month_online"`
	TotalDue         float64    `json:"total_due"`
	AdvanceBalance   float64    `json:"advance_balance"`
	RecentActivities []Activity `json:"recent_activities"`
}

type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TimeAgo     string    `json:"time_ago"`
	RawTime     time.Time `json:"-"`
}
