package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"barberq-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const defaultRetentionDays = 7

// CleanupService purges finished queue entries after a retention window.
// Staff can still clear a salon's history on demand; this is the background
// safety net so the queue table does not grow without bound.
type CleanupService struct {
	db            *gorm.DB
	retentionDays int
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	retention := defaultRetentionDays
	if env := os.Getenv("QUEUE_RETENTION_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			retention = d
		}
	}
	return &CleanupService{db: db, retentionDays: retention}
}

func (s *CleanupService) StartScheduler() {
	c := cron.New()

	// Run every night at 3 AM
	c.AddFunc("0 3 * * *", s.PurgeFinishedEntries)

	c.Start()
	log.Println("Queue cleanup scheduler started")
}

func (s *CleanupService) PurgeFinishedEntries() {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	res := s.db.Where("status IN ? AND created_at < ?",
		[]models.QueueStatus{models.StatusCompleted, models.StatusCancelled}, cutoff).
		Delete(&models.QueueEntry{})

	if res.Error != nil {
		log.Printf("Queue cleanup failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Queue cleanup removed %d finished entries older than %d days",
			res.RowsAffected, s.retentionDays)
	}
}
