package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// BookingConfig holds the arbitration policy knobs.
// BlockedPolicy: what happens to a conflicting non-priority submission.
// "hold" keeps it pending for a human decision, "auto-reject" rejects it
// immediately.
type BookingConfig struct {
	BlockedPolicy string
	LockTimeoutMS int
	LockRetries   int
}

type StorageConfig struct {
	DocumentDir string
}

const (
	BlockedPolicyHold       = "hold"
	BlockedPolicyAutoReject = "auto-reject"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BOOKING_BLOCKED_POLICY", BlockedPolicyHold)
	viper.SetDefault("BOOKING_LOCK_TIMEOUT_MS", 3000)
	viper.SetDefault("BOOKING_LOCK_RETRIES", 3)
	viper.SetDefault("STORAGE_DIR", "storage/documents")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Booking: BookingConfig{
			BlockedPolicy: viper.GetString("BOOKING_BLOCKED_POLICY"),
			LockTimeoutMS: viper.GetInt("BOOKING_LOCK_TIMEOUT_MS"),
			LockRetries:   viper.GetInt("BOOKING_LOCK_RETRIES"),
		},
		Storage: StorageConfig{
			DocumentDir: viper.GetString("STORAGE_DIR"),
		},
	}

	return config, nil
}
