package database

import (
	"database/sql"
	"fmt"
	"log"
	"portfolio/config"
	"portfolio/models"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var DB *gorm.DB

// InitDB opens the database described by config.Settings, runs migrations and
// stores the handle in the package-level DB.
func InitDB() error {
	db, err := Open(config.Settings)
	if err != nil {
		return err
	}
	DB = db

	log.Printf("Database initialized successfully (driver=%s)", driverName(config.Settings))
	return nil
}

// Open connects to the configured database, applies pool settings and
// SQLite PRAGMAs, and migrates the schema.
func Open(settings *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if settings.LogLevel == "DEBUG" {
		logLevel = logger.Info
	}

	dialector, err := openDialector(settings)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: metricsLogger{inner: logger.New(
			log.New(log.Writer(), "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold: 500 * time.Millisecond,
				LogLevel:      logLevel,
			},
		)},
	})
	if err != nil {
		closeDialector(dialector)
		return nil, fmt.Errorf("failed to open %s database: %w", driverName(settings), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		closeDialector(dialector)
		return nil, err
	}

	pool := poolConfigFrom(settings)
	sqlDB.SetMaxIdleConns(pool.maxIdleConns)
	sqlDB.SetMaxOpenConns(pool.maxOpenConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(pool.maxIdleSec) * time.Second)
	sqlDB.SetConnMaxLifetime(time.Duration(pool.maxLifeSec) * time.Second)

	if driverName(settings) == DriverSQLite && settings.SQLitePragmasEnabled {
		// Existing database files keep their journal mode etc. until told otherwise.
		for _, stmt := range sqlitePragmasFrom(settings).statements() {
			if err := db.Exec(stmt).Error; err != nil {
				log.Printf("Warning: %s failed: %v", stmt, err)
			}
		}
	}

	if err := db.AutoMigrate(&models.ContactSubmission{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

func openDialector(settings *config.Config) (gorm.Dialector, error) {
	switch driverName(settings) {
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(settings)), nil
	case DriverPostgres:
		conn, err := sql.Open("postgres", settings.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		return postgres.New(postgres.Config{Conn: conn}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", settings.DatabaseDriver)
	}
}

// closeDialector releases a connection handed to the dialector up front, for
// when gorm never took ownership of it.
func closeDialector(d gorm.Dialector) {
	if pg, ok := d.(*postgres.Dialector); ok && pg.Conn != nil {
		if conn, ok := pg.Conn.(*sql.DB); ok {
			_ = conn.Close()
		}
	}
}

func driverName(settings *config.Config) string {
	if settings.DatabaseDriver == "" {
		return DriverSQLite
	}
	return settings.DatabaseDriver
}

// CloseDB closes the database connection and releases resources
func CloseDB() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	log.Println("Closing database connection...")
	return sqlDB.Close()
}
