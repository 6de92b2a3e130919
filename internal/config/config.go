package config // package config loads application configuration from environment variables

import (
    "fmt"     // fmt formats configuration errors
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types

    "github.com/joho/godotenv" // godotenv loads a local .env file into the environment
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
    Env          string // application environment (e.g. "dev", "prod")
    Port         string // HTTP port to listen on
    LogLevel     string // charmbracelet/log level name (debug, info, warn, error)
    DBUser       string // database username
    DBPass       string // database password (optional)
    DBHost       string // database host address
    DBPort       string // database port number
    DBName       string // database name
    JWTSecret    string // secret used to verify (and, from the CLI, sign) JWTs
    AccessTTLMin int    // access token time-to-live in minutes
}

// LoadDotEnv loads variables from a .env file in the working directory when
// one exists.  Variables already set in the environment win.
func LoadDotEnv() {
    if _, err := os.Stat(".env"); err == nil {
        _ = godotenv.Load()
    }
}

// Load reads configuration values from environment variables and returns a
// Config.  Missing or malformed required variables are reported as an
// error naming the variable.
func Load() (Config, error) {
    LoadDotEnv()
    var errs []error
    must := func(key string) string {
        v, ok := os.LookupEnv(key)
        if !ok || v == "" {
            errs = append(errs, fmt.Errorf("missing required env var: %s", key))
        }
        return v
    }
    mustInt := func(key string) int {
        s := must(key)
        if s == "" {
            return 0
        }
        n, err := strconv.Atoi(s)
        if err != nil {
            errs = append(errs, fmt.Errorf("invalid int for %s: %q", key, s))
        }
        return n
    }
    cfg := Config{
        Env:          must("APP_ENV"),               // environment (dev/test/prod)
        Port:         must("APP_PORT"),              // port to bind the HTTP server
        LogLevel:     envStr("LOG_LEVEL", "info"),   // log verbosity
        DBUser:       must("DB_USER"),               // database user
        DBPass:       os.Getenv("DB_PASS"),          // database password (empty allowed)
        DBHost:       must("DB_HOST"),               // database host
        DBPort:       must("DB_PORT"),               // database port
        DBName:       must("DB_NAME"),               // database name
        JWTSecret:    must("JWT_SECRET"),            // secret used for signing JWTs
        AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
    }
    if len(errs) > 0 {
        return Config{}, errs[0]
    }
    return cfg, nil
}
