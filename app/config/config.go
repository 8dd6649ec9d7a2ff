package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	JWTSecret string
	SMS       SMSConfig
}

// SMSConfig holds credentials for the SMS gateway used for fee receipts
// and reminders. An empty APIKey selects the console gateway.
type SMSConfig struct {
	APIKey   string
	SenderID string
}

var AppConfig *Config

// Load reads .env (if present) plus environment variables, opens the
// database connection pool and verifies it.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnvInt("DB_PORT", 5432),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "demoschool"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{
		DB:        db,
		JWTSecret: getEnv("JWT_SECRET", "demoschool-secret-key"),
		SMS: SMSConfig{
			APIKey:   os.Getenv("SMS_API_KEY"),
			SenderID: getEnv("SMS_SENDER_ID", "DEMOSCHOOL"),
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
