package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Fee due reminders go out at 9:00 AM
			if now.Hour() == 9 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [09:00]...")
				if err := SendDueReminders(db); err != nil {
					log.Printf("Error sending fee due reminders: %v", err)
				}
			}
		}
	}()
}

// SendDueReminders texts every guardian with an outstanding balance.
func SendDueReminders(db *sql.DB) error {
	students, dues, err := database.GetStudentsWithDues(db)
	if err != nil {
		return err
	}
	for i, s := range students {
		SendDueReminder(s, dues[i])
	}
	log.Printf("Sent %d fee due reminders", len(students))
	return nil
}
