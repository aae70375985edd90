package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName    string `json:"appname"`
	AppEnv     string `json:"appenv"`
	AppPort    uint16 `json:"appport"`
	GinMode    string `json:"ginmode"`
	DBHost     string `json:"dbhost"`
	DBPort     uint16 `json:"dbport"`
	DBName     string `json:"dbname"`
	DBUSER     string `json:"dbuser"`
	DBPass     string `json:"dbpass"`
	AdminToken string `json:"admintoken"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
// A missing .env file is not fatal: in test and container environments the
// configuration arrives through real environment variables.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Printf("config: no .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = 8080
		}
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

		ginMode := os.Getenv("GINMODE")
		if ginMode == "" {
			ginMode = "release"
		}

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName:    os.Getenv("APPNAME"),
			AppEnv:     os.Getenv("APPENV"),
			AppPort:    uint16(appPort),
			GinMode:    ginMode,
			DBHost:     os.Getenv("DBHOST"),
			DBPort:     uint16(dbPort),
			DBName:     os.Getenv("DBNAME"),
			DBUSER:     os.Getenv("DBUSER"),
			DBPass:     os.Getenv("DBPASS"),
			AdminToken: os.Getenv("ADMINTOKEN"),
		}
	})
	return config
}

// ConnectMySQL establishes a connection to a MySQL database using the configuration values.
// When APPENV=test it connects to an in-memory SQLite database instead, so the
// test suite never needs a running MySQL server.
func ConnectMySQL() (*gorm.DB, error) {
	cfg := LoadConfig()

	// TranslateError maps driver-specific unique-key violations onto
	// gorm.ErrDuplicatedKey, which the patient creation endpoint relies on.
	gormCfg := &gorm.Config{TranslateError: true}

	if cfg.AppEnv == "test" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormCfg)
	}

	// Build the Data Source Name (DSN) using the configuration values.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	// Open a database connection.
	db, err := gorm.Open(mysql.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}

	return db, nil
}
