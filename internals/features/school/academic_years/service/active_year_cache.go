// file: internals/features/school/academic_years/service/active_year_cache.go
package service

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	yearModel "ecoleadmin_backend/internals/features/school/academic_years/model"
)

// ErrNoActiveYear: précondition de quasi toutes les requêtes métier.
// Les agrégations échouent vite avec cette erreur, jamais de solde partiel.
var ErrNoActiveYear = errors.New("aucune année académique active")

// ActiveYearCache: mémo injectable de l'année active. Cache best-effort, pas
// un verrou: une lecture périmée risque au pire d'utiliser l'ancienne année
// pendant la fenêtre TTL, acceptable car l'activation est un geste admin rare.
type ActiveYearCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	year      *yearModel.AcademicYearModel
	expiresAt time.Time
}

func NewActiveYearCache(ttl time.Duration) *ActiveYearCache {
	return &ActiveYearCache{ttl: ttl, now: time.Now}
}

// NewActiveYearCacheWithClock: horloge injectable pour les tests.
func NewActiveYearCacheWithClock(ttl time.Duration, now func() time.Time) *ActiveYearCache {
	return &ActiveYearCache{ttl: ttl, now: now}
}

// Get: get-or-refresh. Retourne une copie de l'année active, ou
// ErrNoActiveYear si aucune ligne n'est flaguée active.
func (cache *ActiveYearCache) Get(db *gorm.DB) (yearModel.AcademicYearModel, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.year != nil && cache.now().Before(cache.expiresAt) {
		return *cache.year, nil
	}

	var year yearModel.AcademicYearModel
	if err := db.Where("annee_est_active = ?", true).First(&year).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return yearModel.AcademicYearModel{}, ErrNoActiveYear
		}
		return yearModel.AcademicYearModel{}, err
	}

	cache.year = &year
	cache.expiresAt = cache.now().Add(cache.ttl)
	return year, nil
}

// Invalidate: appelé par l'endpoint d'activation pour que le changement
// d'année soit visible immédiatement.
func (cache *ActiveYearCache) Invalidate() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.year = nil
	cache.expiresAt = time.Time{}
}
