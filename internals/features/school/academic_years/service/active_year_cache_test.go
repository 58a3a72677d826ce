package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yearModel "ecoleadmin_backend/internals/features/school/academic_years/model"
)

// Les tests travaillent en boîte blanche avec une horloge injectée: tant que
// le mémo est chaud, Get ne touche jamais la DB (db=nil le prouverait par un
// panic).
func TestActiveYearCacheMemoHit(t *testing.T) {
	clock := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	cache := NewActiveYearCacheWithClock(60*time.Second, func() time.Time { return clock })

	annee := yearModel.AcademicYearModel{AnneeLibelle: "2025-2026", AnneeEstActive: true}
	cache.year = &annee
	cache.expiresAt = clock.Add(60 * time.Second)

	got, err := cache.Get(nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-2026", got.AnneeLibelle)

	// toujours chaud juste avant l'expiration
	clock = clock.Add(59 * time.Second)
	got, err = cache.Get(nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-2026", got.AnneeLibelle)
}

func TestActiveYearCacheExpiry(t *testing.T) {
	clock := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	cache := NewActiveYearCacheWithClock(60*time.Second, func() time.Time { return clock })

	annee := yearModel.AcademicYearModel{AnneeLibelle: "2025-2026", AnneeEstActive: true}
	cache.year = &annee
	cache.expiresAt = clock.Add(60 * time.Second)

	// à TTL écoulé le mémo est périmé et Get repasserait par la DB
	clock = clock.Add(61 * time.Second)
	assert.False(t, cache.now().Before(cache.expiresAt))
}

func TestActiveYearCacheInvalidate(t *testing.T) {
	clock := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	cache := NewActiveYearCacheWithClock(60*time.Second, func() time.Time { return clock })

	annee := yearModel.AcademicYearModel{AnneeLibelle: "2025-2026", AnneeEstActive: true}
	cache.year = &annee
	cache.expiresAt = clock.Add(60 * time.Second)

	cache.Invalidate()
	assert.Nil(t, cache.year)
	assert.True(t, cache.expiresAt.IsZero())
}
