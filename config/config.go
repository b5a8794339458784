package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	Port      string
	DBPath    string
	UploadDir string

	// TaxRate is the checkout tax percentage. The business has quoted both
	// 8% and 8.75% at different times; 8% is the operative rate unless
	// TAX_RATE overrides it.
	TaxRate float64

	SendGridAPIKey string
	EmailFrom      string

	OpenAIAPIKey string
	OpenAIModel  string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "3000"
	}

	DBPath = os.Getenv("DB_PATH")
	if DBPath == "" {
		DBPath = "database.db"
	}

	UploadDir = os.Getenv("UPLOAD_DIR")
	if UploadDir == "" {
		UploadDir = "uploads"
	}

	TaxRate = 0.08
	if raw := os.Getenv("TAX_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 {
			log.Printf("Invalid TAX_RATE %q, keeping default %.4f", raw, TaxRate)
		} else {
			TaxRate = rate
		}
	}

	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	EmailFrom = os.Getenv("EMAIL_FROM")
	if EmailFrom == "" {
		EmailFrom = "noreply@heirloomjewelry.com"
	}

	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	OpenAIModel = os.Getenv("OPENAI_MODEL")
	if OpenAIModel == "" {
		OpenAIModel = "gpt-4o-mini"
	}
}
