package logging

import (
	"log/slog"
	"time"

	"github.com/habibieebhy/fieldforce-backend/internal/models"
	"gorm.io/gorm"
)

const (
	cleanupInterval  = 24 * time.Hour
	logRetentionDays = 30
)

// StartCleanup runs a daily goroutine that deletes system_logs past the
// retention window.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -logRetentionDays)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
