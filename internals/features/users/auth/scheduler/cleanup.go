package scheduler

import (
	"log"
	"strconv"
	"time"

	"ecoleadmin_backend/internals/configs"
	"ecoleadmin_backend/internals/features/users/auth/model"

	"gorm.io/gorm"
)

// StartBlacklistCleanupScheduler purge périodiquement les tokens révoqués
// déjà expirés. Un token expiré est de toute façon rejeté par l'auth, la
// blacklist ne sert donc plus à rien pour lui.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// TTL depuis l'env (défaut: 7 jours)
		ttlDays := 7
		if val := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Purge de token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Lecture des tokens expirés impossible: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP ERROR] Suppression impossible: %v", err)
				} else {
					log.Printf("[CLEANUP] %d tokens expirés supprimés", len(expiredTokens))
				}
			} else {
				log.Println("[CLEANUP] Rien à purger")
			}

			// toutes les 24h
			time.Sleep(24 * time.Hour)
		}
	}()
}
