package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var JWTSecret string

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ Pas de fichier .env, on se rabat sur les variables d'environnement")
	}

	JWTSecret = os.Getenv("JWT_SECRET")

	if JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET est vide — les tokens ne pourront pas être vérifiés")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ActiveYearCacheTTL: durée de validité du mémo "année active".
// L'année active change rarement (action administrative), 60s par défaut.
func ActiveYearCacheTTL() time.Duration {
	if v := os.Getenv("ACTIVE_YEAR_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return 60 * time.Second
}

// AccessTokenTTL: durée de vie du token d'accès.
func AccessTokenTTL() time.Duration {
	if v := os.Getenv("ACCESS_TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return 24 * time.Hour
}
