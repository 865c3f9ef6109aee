package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"pocket-budget/budget"
	"pocket-budget/period"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP server
	Port               string
	APIToken           string
	AuthDisabled       bool
	CORSAllowedOrigins []string

	// Budget session
	StartingBalance string
	SeedDemo        bool
	PeriodSchedule  string
	CurrencySymbol  string

	// Logging
	LogLevel  string
	LogPretty bool
}

// Load reads .env (if present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment only
func FromEnv() *Config {
	return &Config{
		Port:               getEnv("PORT", "8880"),
		APIToken:           os.Getenv("API_TOKEN"),
		AuthDisabled:       getEnvBool("AUTH_DISABLED", false),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		StartingBalance: getEnv("STARTING_BALANCE", "0"),
		SeedDemo:        getEnvBool("SEED_DEMO", true),
		PeriodSchedule:  getEnv("PERIOD_SCHEDULE", period.DefaultSchedule),
		CurrencySymbol:  getEnv("CURRENCY_SYMBOL", "$"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvBool("LOG_PRETTY", false),
	}
}

// Validate returns every configuration problem in one error
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIToken == "" && !c.AuthDisabled {
		errors = append(errors, "API_TOKEN is required (set AUTH_DISABLED=true to run without auth)")
	}

	if _, err := budget.ParseDecimal(c.StartingBalance); err != nil {
		errors = append(errors, fmt.Sprintf("invalid starting balance '%s': must be a plain decimal number with at most %d whole digits", c.StartingBalance, budget.MaxIntegerDigits))
	}

	if err := period.ValidateSchedule(c.PeriodSchedule); err != nil {
		errors = append(errors, fmt.Sprintf("invalid period schedule '%s': %v", c.PeriodSchedule, err))
	}

	if strings.TrimSpace(c.CurrencySymbol) == "" {
		errors = append(errors, "currency symbol cannot be empty")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// StartingBalanceDecimal parses StartingBalance; call Validate first
func (c *Config) StartingBalanceDecimal() decimal.Decimal {
	d, err := budget.ParseDecimal(c.StartingBalance)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// AuthEnabled reports whether requests must carry the API token
func (c *Config) AuthEnabled() bool {
	return !c.AuthDisabled
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

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
	return out
}
