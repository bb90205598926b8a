// Package scheduler runs background housekeeping jobs.
package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/internal/application"
	"github.com/keita-f/scrimmage/internal/game"
	"github.com/keita-f/scrimmage/utils"
)

// StartApplicationSweeper launches an hourly job that rejects still-pending
// applications whose game date has passed, so owner dashboards don't
// accumulate requests that can no longer be decided. The returned scheduler
// should be shut down by the process entry point.
func StartApplicationSweeper(db *gorm.DB) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			SweepStaleApplications(db)
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}

// SweepStaleApplications rejects pending applications against past-dated
// games. Matched games are untouched: their applications were already
// decided by the approval transaction.
func SweepStaleApplications(db *gorm.DB) {
	pastGames := db.Model(&game.Game{}).
		Select("id").
		Where("date < ?", utils.TodayString())

	res := db.Model(&application.Application{}).
		Where("status = ? AND game_id IN (?)", application.StatusPending, pastGames).
		Update("status", application.StatusRejected)
	if res.Error != nil {
		log.Printf("[sweeper] rejecting stale applications failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[sweeper] rejected %d stale applications", res.RowsAffected)
	}
}
