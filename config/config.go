package config

import (
	"flag"
	"fmt"
	"os"
	"portfolio/version"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the site server runtime configuration.
type Config struct {
	LogLevel             string
	LogFilePath          string
	Port                 int
	DatabaseDriver       string
	DatabaseURL          string
	SQLitePragmasEnabled bool
	SQLiteBusyTimeoutMS  int
	SQLiteJournalMode    string
	SQLiteSynchronous    string
	SQLiteForeignKeys    bool
	SQLiteMaxOpenConns   int
	SQLiteMaxIdleConns   int
	SQLiteConnMaxIdleSec int
	SQLiteConnMaxLifeSec int
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int
	StaticDir            string
	CORSAllowOrigins     []string
	MaxErrorLogs         int
}

// Settings is the global configuration instance populated from environment variables and flags.
var Settings *Config

func init() {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	Settings = Load()
}

// Load builds a Config from the current environment, falling back to defaults.
func Load() *Config {
	return &Config{
		LogLevel:             strings.ToUpper(getEnv("LOG_LEVEL", "INFO")),
		LogFilePath:          getEnv("LOG_FILE", "./portfolio.log"),
		Port:                 getEnvInt("PORT", 8000),
		DatabaseDriver:       strings.ToLower(getEnv("DATABASE_DRIVER", "sqlite")),
		DatabaseURL:          getEnv("DATABASE_URL", "portfolio.db"),
		SQLitePragmasEnabled: getEnvBool("SQLITE_PRAGMAS_ENABLED", true),
		SQLiteBusyTimeoutMS:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		SQLiteJournalMode:    getEnv("SQLITE_JOURNAL_MODE", "WAL"),
		SQLiteSynchronous:    getEnv("SQLITE_SYNCHRONOUS", "NORMAL"),
		SQLiteForeignKeys:    getEnvBool("SQLITE_FOREIGN_KEYS", true),
		SQLiteMaxOpenConns:   getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		SQLiteMaxIdleConns:   getEnvInt("SQLITE_MAX_IDLE_CONNS", 1),
		SQLiteConnMaxIdleSec: getEnvInt("SQLITE_CONN_MAX_IDLE_SECONDS", 300),
		SQLiteConnMaxLifeSec: getEnvInt("SQLITE_CONN_MAX_LIFETIME_SECONDS", 0),
		PostgresMaxOpenConns: getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
		PostgresMaxIdleConns: getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
		StaticDir:            getEnv("STATIC_DIR", "static"),
		CORSAllowOrigins:     getEnvList("CORS_ALLOW_ORIGINS", nil),
		MaxErrorLogs:         getEnvInt("MAX_ERROR_LOGS", 100),
	}
}

// ParseFlags parses command-line flags and applies any overrides to the package-level Settings.
// It handles --help (prints usage and exits) and --version (prints build info and exits).
func ParseFlags() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Portfolio site server\n\n")
		fmt.Fprintf(out, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(out, "\nEnvironment variables (also read from ./.env):")
		fmt.Fprintln(out, "  LOG_LEVEL                         Log level (DEBUG, INFO, WARN, ERROR)")
		fmt.Fprintln(out, "  LOG_FILE                          Log file path, '-' for stderr (default ./portfolio.log)")
		fmt.Fprintln(out, "  PORT                              HTTP server port (default 8000)")
		fmt.Fprintln(out, "  DATABASE_DRIVER                   sqlite or postgres (default sqlite)")
		fmt.Fprintln(out, "  DATABASE_URL                      SQLite path or PostgreSQL DSN (default portfolio.db)")
		fmt.Fprintln(out, "  SQLITE_PRAGMAS_ENABLED            Enable SQLite PRAGMAs (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_BUSY_TIMEOUT_MS            SQLite busy_timeout in milliseconds (default 5000)")
		fmt.Fprintln(out, "  SQLITE_JOURNAL_MODE               SQLite journal_mode (default WAL)")
		fmt.Fprintln(out, "  SQLITE_SYNCHRONOUS                SQLite synchronous (default NORMAL)")
		fmt.Fprintln(out, "  SQLITE_FOREIGN_KEYS               Enable SQLite foreign_keys (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_MAX_OPEN_CONNS             MaxOpenConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_MAX_IDLE_CONNS             MaxIdleConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_IDLE_SECONDS      ConnMaxIdleTime in seconds (default 300)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_LIFETIME_SECONDS  ConnMaxLifetime in seconds (default 0)")
		fmt.Fprintln(out, "  POSTGRES_MAX_OPEN_CONNS           MaxOpenConns when DATABASE_DRIVER=postgres (default 10)")
		fmt.Fprintln(out, "  POSTGRES_MAX_IDLE_CONNS           MaxIdleConns when DATABASE_DRIVER=postgres (default 5)")
		fmt.Fprintln(out, "  STATIC_DIR                        Directory served under /static, incl. img/portfolio (default static)")
		fmt.Fprintln(out, "  CORS_ALLOW_ORIGINS                Comma-separated allowed origins (default all)")
		fmt.Fprintln(out, "  MAX_ERROR_LOGS                    Recorded server errors kept in memory (default 100)")
	}

	port := flag.Int("port", Settings.Port, "HTTP server port (overrides PORT)")
	dbDriver := flag.String("db-driver", Settings.DatabaseDriver, "Database driver: sqlite or postgres (overrides DATABASE_DRIVER)")
	db := flag.String("db", Settings.DatabaseURL, "Database path or DSN (overrides DATABASE_URL)")
	sqlitePragmasEnabled := flag.Bool("sqlite-pragmas", Settings.SQLitePragmasEnabled, "Enable SQLite PRAGMAs (overrides SQLITE_PRAGMAS_ENABLED)")
	sqliteBusyTimeoutMS := flag.Int("sqlite-busy-timeout-ms", Settings.SQLiteBusyTimeoutMS, "SQLite busy_timeout in milliseconds (overrides SQLITE_BUSY_TIMEOUT_MS)")
	sqliteJournalMode := flag.String("sqlite-journal-mode", Settings.SQLiteJournalMode, "SQLite journal_mode (overrides SQLITE_JOURNAL_MODE)")
	sqliteSynchronous := flag.String("sqlite-synchronous", Settings.SQLiteSynchronous, "SQLite synchronous (overrides SQLITE_SYNCHRONOUS)")
	sqliteMaxOpenConns := flag.Int("sqlite-max-open-conns", Settings.SQLiteMaxOpenConns, "MaxOpenConns (overrides SQLITE_MAX_OPEN_CONNS)")
	staticDir := flag.String("static-dir", Settings.StaticDir, "Directory served under /static (overrides STATIC_DIR)")
	logLevel := flag.String("log-level", Settings.LogLevel, "Log level: DEBUG, INFO, WARN, ERROR (overrides LOG_LEVEL)")
	logFile := flag.String("log-file", Settings.LogFilePath, "Log file path, '-' for stderr (overrides LOG_FILE)")

	showHelp := flag.Bool("help", false, "Show help and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetBuildInfo())
		os.Exit(0)
	}

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	Settings.Port = *port
	Settings.DatabaseDriver = strings.ToLower(strings.TrimSpace(*dbDriver))
	Settings.DatabaseURL = *db
	Settings.SQLitePragmasEnabled = *sqlitePragmasEnabled
	Settings.SQLiteBusyTimeoutMS = *sqliteBusyTimeoutMS
	Settings.SQLiteJournalMode = *sqliteJournalMode
	Settings.SQLiteSynchronous = *sqliteSynchronous
	Settings.SQLiteMaxOpenConns = *sqliteMaxOpenConns
	Settings.StaticDir = *staticDir
	Settings.LogLevel = strings.ToUpper(*logLevel)
	Settings.LogFilePath = *logFile
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
