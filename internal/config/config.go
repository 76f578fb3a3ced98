package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Office   OfficeConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// OfficeConfig holds the office reference location and working hours used by
// the attendance engine. Geofencing is enabled only when both OFFICE_LAT and
// OFFICE_LNG are set.
//
// The check-in and check-out radii are intentionally separate knobs: the
// legacy system shipped with 200 m for check-in and 50 m for check-out, and
// that asymmetry is preserved until product decides otherwise.
type OfficeConfig struct {
	Latitude         *float64
	Longitude        *float64
	CheckInRadiusM   float64
	CheckOutRadiusM  float64
	StartTime        string // HH:mm
	EndTime          string // HH:mm
	UTCOffsetMinutes int
}

// GeofenceEnabled reports whether an office reference location is configured.
func (o OfficeConfig) GeofenceEnabled() bool {
	return o.Latitude != nil && o.Longitude != nil
}

func Load() (*Config, error) {
	// A missing .env is fine in production, values come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "orbitdesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Office configuration
	office, err := loadOffice()
	if err != nil {
		return nil, err
	}
	config.Office = office

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadOffice() (OfficeConfig, error) {
	office := OfficeConfig{
		StartTime: getEnv("OFFICE_START", "09:30"),
		EndTime:   getEnv("OFFICE_END", "18:30"),
	}

	if lat := os.Getenv("OFFICE_LAT"); lat != "" {
		v, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return OfficeConfig{}, fmt.Errorf("invalid OFFICE_LAT: %w", err)
		}
		office.Latitude = &v
	}
	if lng := os.Getenv("OFFICE_LNG"); lng != "" {
		v, err := strconv.ParseFloat(lng, 64)
		if err != nil {
			return OfficeConfig{}, fmt.Errorf("invalid OFFICE_LNG: %w", err)
		}
		office.Longitude = &v
	}

	checkInRadius, err := strconv.ParseFloat(getEnv("OFFICE_CHECKIN_RADIUS_M", "200"), 64)
	if err != nil {
		return OfficeConfig{}, fmt.Errorf("invalid OFFICE_CHECKIN_RADIUS_M: %w", err)
	}
	office.CheckInRadiusM = checkInRadius

	checkOutRadius, err := strconv.ParseFloat(getEnv("OFFICE_CHECKOUT_RADIUS_M", "50"), 64)
	if err != nil {
		return OfficeConfig{}, fmt.Errorf("invalid OFFICE_CHECKOUT_RADIUS_M: %w", err)
	}
	office.CheckOutRadiusM = checkOutRadius

	// Default is IST (UTC+5:30), matching the legacy deployment.
	offsetMin, err := strconv.Atoi(getEnv("OFFICE_UTC_OFFSET_MIN", "330"))
	if err != nil {
		return OfficeConfig{}, fmt.Errorf("invalid OFFICE_UTC_OFFSET_MIN: %w", err)
	}
	office.UTCOffsetMinutes = offsetMin

	return office, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if (c.Office.Latitude == nil) != (c.Office.Longitude == nil) {
		return fmt.Errorf("OFFICE_LAT and OFFICE_LNG must be set together")
	}
	if c.Office.CheckInRadiusM <= 0 || c.Office.CheckOutRadiusM <= 0 {
		return fmt.Errorf("office radii must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
