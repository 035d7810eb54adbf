package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"emoclass_backend/internals/features/home/notifications/model"
)

// StartNotificationCleanupScheduler menghapus notifikasi yang sudah dibaca
// dan lebih tua dari masa retensi (default: 30 hari). Jalan tiap 24 jam.
func StartNotificationCleanupScheduler(db *gorm.DB) {
	go func() {
		retentionDays := 30
		if val := os.Getenv("NOTIFICATION_RETENTION_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				retentionDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan notifikasi lama...")

			deleteBefore := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

			res := db.
				Where("notification_is_read = ? AND notification_created_at < ?", true, deleteBefore).
				Delete(&model.NotificationModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus notifikasi lama: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d notifikasi lama dihapus", res.RowsAffected)
			} else {
				log.Println("[CLEANUP] Tidak ada notifikasi yang memenuhi syarat dihapus")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
