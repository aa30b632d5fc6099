package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Open the new billing month on the 1st at 06:00
			if now.Day() == 1 && now.Hour() == 6 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [month rollover]...")

				if n, err := OpenBillingMonth(db, now); err != nil {
					log.Printf("Error opening billing month: %v", err)
				} else {
					log.Printf("Billing month opened for %d students", n)
				}
			}
		}
	}()
}
