package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	AdminAPIKey       string
	AdminUser         string
	AdminPasswordHash string

	SessionKey string

	BlobBaseURL string
	BlobToken   string

	WhatsAppPhone string

	OrcamentoDataDir string

	MaxUploadBytes int64

	APP_URL string
	APP_ENV string
}

// Upload limit applied uniformly. The legacy app disagreed with itself
// (5MB in the widget, 10MB at the endpoint); 10MB wins.
const DefaultMaxUploadBytes = 10 << 20

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	maxUpload := int64(DefaultMaxUploadBytes)
	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			log.Printf("LoadEnv: MAX_UPLOAD_BYTES invalido (%q), usando default %d", raw, DefaultMaxUploadBytes)
		} else {
			maxUpload = parsed
		}
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),

		AdminAPIKey:       os.Getenv("ADMIN_API_KEY"),
		AdminUser:         os.Getenv("ADMIN_USER"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		SessionKey: os.Getenv("SESSION_KEY"),

		BlobBaseURL: os.Getenv("BLOB_BASE_URL"),
		BlobToken:   os.Getenv("BLOB_READ_WRITE_TOKEN"),

		WhatsAppPhone: os.Getenv("WHATSAPP_PHONE"),

		OrcamentoDataDir: os.Getenv("ORCAMENTO_DATA_DIR"),

		MaxUploadBytes: maxUpload,

		APP_URL: os.Getenv("APP_URL"),
		APP_ENV: os.Getenv("APP_ENV"),
	}

}

var LoadENV = LoadEnv()
