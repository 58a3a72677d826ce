package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connexion à PostgreSQL...")

	// DSN complet + statement_timeout.
	// Si PgBouncer (transaction pooling), garder PreferSimpleProtocol=true.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ecoleadmin&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Échec connexion DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// requête légère pour remplir le pool au démarrage
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
