package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"gorm.io/gorm"
)

// PurgeOlderThan deletes system_logs rows written before now minus retention.
func PurgeOlderThan(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

// StartCleanup runs a daily goroutine that purges system_logs older than retentionDays.
func StartCleanup(db *gorm.DB, retentionDays int, done chan struct{}) {
	if retentionDays <= 0 {
		return
	}
	retention := time.Duration(retentionDays) * 24 * time.Hour

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := PurgeOlderThan(db, retention)
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
