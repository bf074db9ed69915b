package jobs

import (
	"context"
	"log"
	"time"

	"github.com/anjiri1684/tutoring_center/database"
	"github.com/anjiri1684/tutoring_center/models"
	"github.com/anjiri1684/tutoring_center/scheduling"
	"github.com/anjiri1684/tutoring_center/stores"
)

// CompleteElapsedSessions marks scheduled sessions whose end time passed as
// done, then completes any active contract that has no open sessions left.
// The contract move goes through the lifecycle service so the transition
// table stays the single authority.
func CompleteElapsedSessions() {
	log.Println("Running job: CompleteElapsedSessions...")

	cutoff := time.Now().Add(-5 * time.Minute)

	var elapsed []models.ContractSession
	err := database.DB.
		Where("status = ? AND end_time <= ?", models.SessionScheduled, cutoff).
		Find(&elapsed).Error
	if err != nil {
		log.Printf("Error checking for elapsed sessions: %v", err)
		return
	}

	contractIDs := make(map[string]bool)
	for _, session := range elapsed {
		session.Status = models.SessionDone
		if err := database.DB.Save(&session).Error; err != nil {
			log.Printf("Error marking session %s done: %v", session.ID, err)
			continue
		}
		contractIDs[session.ContractID.String()] = true
	}
	if len(elapsed) > 0 {
		log.Printf("Marked %d session(s) as done.", len(elapsed))
	}

	service := scheduling.NewContractService(stores.New(database.DB))
	ctx := context.Background()

	for id := range contractIDs {
		var contract models.Contract
		if err := database.DB.First(&contract, "id = ?", id).Error; err != nil {
			continue
		}
		if contract.Status != models.ContractActive {
			continue
		}

		var open int64
		database.DB.Model(&models.ContractSession{}).
			Where("contract_id = ? AND status = ?", contract.ID, models.SessionScheduled).
			Count(&open)
		if open > 0 {
			continue
		}

		if _, err := service.UpdateStatus(ctx, contract.ID, models.ContractCompleted); err != nil {
			log.Printf("Error completing contract %s: %v", contract.ID, err)
		}
	}
}
