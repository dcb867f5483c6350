package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// DatabasePath is the location of the sqlite ledger file.
	DatabasePath string
	// Editor is the command launched to collect free-form chunk input.
	Editor string
	// CategoryMatchDistance is the Levenshtein cutoff below which a new
	// category name is treated as a re-entry of an existing one.
	CategoryMatchDistance int
	// ColorOutput toggles colored report rendering.
	ColorOutput bool
	// CSVDateFormat is the date layout used by the built-in CSV source.
	CSVDateFormat string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PLA_DB_PATH", "ledger.db")
	viper.SetDefault("PLA_EDITOR", "")
	viper.SetDefault("PLA_CATEGORY_MATCH_DISTANCE", 2)
	viper.SetDefault("PLA_COLOR_OUTPUT", true)
	viper.SetDefault("PLA_CSV_DATE_FORMAT", "2006-01-02")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabasePath = viper.GetString("PLA_DB_PATH")
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "ledger.db"
		log.Printf("Warning: PLA_DB_PATH not set. Defaulting to %s\n", cfg.DatabasePath)
	}

	cfg.Editor = viper.GetString("PLA_EDITOR")
	if cfg.Editor == "" {
		// Fall back to the conventional EDITOR variable before the hard default.
		if ed := os.Getenv("EDITOR"); ed != "" {
			cfg.Editor = ed
		} else {
			cfg.Editor = "vi"
		}
	}

	cfg.CategoryMatchDistance = viper.GetInt("PLA_CATEGORY_MATCH_DISTANCE")
	if cfg.CategoryMatchDistance < 0 {
		log.Printf("Warning: PLA_CATEGORY_MATCH_DISTANCE is negative. Defaulting to 2.\n")
		cfg.CategoryMatchDistance = 2
	}

	cfg.ColorOutput = viper.GetBool("PLA_COLOR_OUTPUT")
	cfg.CSVDateFormat = viper.GetString("PLA_CSV_DATE_FORMAT")

	return cfg, nil
}
