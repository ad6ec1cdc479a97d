package scheduler

import (
	"invest/database"
	"invest/services"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeReturnScheduler starts the daily job that settles matured
// investments: credited return, return ledger entry, investment completed
func InitializeReturnScheduler() *cron.Cron {
	log.Println("[RETURN-SCHEDULER] Initializing investment return scheduler...")

	c := cron.New()

	// Run daily at 00:05 UTC, shortly after next_return_date rolls over
	c.AddFunc("5 0 * * *", func() {
		log.Println("[RETURN-SCHEDULER] Running daily return settlement...")
		settled, err := services.ProcessReturns(database.Database.Db, time.Now())
		if err != nil {
			log.Printf("[RETURN-SCHEDULER] Error settling returns: %v", err)
			return
		}
		log.Printf("[RETURN-SCHEDULER] Settled %d matured investments", settled)
	})

	c.Start()
	log.Println("[RETURN-SCHEDULER] Scheduler started - runs daily at 00:05 UTC")
	return c
}
