package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Getenv returns the value of key or fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the MySQL connection for a service. Each service carries its
// own schema, selected through dsnEnv.
func InitDB(dsnEnv, defaultDSN string) (*gorm.DB, error) {
	dsn := Getenv(dsnEnv, defaultDSN)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
