package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/anjiri1684/tutoring_center/database"
	"github.com/anjiri1684/tutoring_center/models"
	"github.com/anjiri1684/tutoring_center/notifications"
)

func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingSessions []models.ContractSession

	err := database.DB.
		Preload("Contract.Parent").
		Preload("Tutor").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.SessionScheduled, lowerBound, upperBound).
		Find(&upcomingSessions).Error

	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	if len(upcomingSessions) == 0 {
		return
	}

	for _, session := range upcomingSessions {
		log.Printf("Sending reminder for session ID: %s", session.ID)

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your tutoring session is scheduled to start in one hour at %s.</p>",
			session.StartTime.Format(time.Kitchen),
		)

		go notifications.SendEmail(session.Contract.Parent.FullName, session.Contract.Parent.Email, emailSubject, emailBody)
		if session.TutorID != nil {
			go notifications.SendEmail(session.Tutor.FullName, session.Tutor.Email, emailSubject, emailBody)
		}
	}
}
