// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/quantlab/frontier/pkg/logger"
	"github.com/quantlab/frontier/pkg/optimization"
)

// Config holds the library defaults that embedding applications can override
// through the environment or a .env file.
type Config struct {
	LogLevel  string
	LogPretty bool

	PeriodsPerYear int     // observation periods per year, 252 for daily data
	RiskFreeRate   float64 // annual, as a decimal

	FrontierMixStart       float64
	FrontierMixEnd         float64
	FrontierMixStep        float64
	FrontierTargetMultiple float64
}

// Load reads configuration from environment variables, consulting a .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", false),

		PeriodsPerYear: getEnvAsInt("PERIODS_PER_YEAR", optimization.DefaultPeriodsPerYear),
		RiskFreeRate:   getEnvAsFloat("RISK_FREE_RATE", 0.0),

		FrontierMixStart:       getEnvAsFloat("FRONTIER_MIX_START", optimization.DefaultMixStart),
		FrontierMixEnd:         getEnvAsFloat("FRONTIER_MIX_END", optimization.DefaultMixEnd),
		FrontierMixStep:        getEnvAsFloat("FRONTIER_MIX_STEP", optimization.DefaultMixStep),
		FrontierTargetMultiple: getEnvAsFloat("FRONTIER_TARGET_MULTIPLE", optimization.DefaultTargetMultiple),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configured values can drive a frontier sweep.
func (c *Config) Validate() error {
	if c.PeriodsPerYear <= 0 {
		return fmt.Errorf("PERIODS_PER_YEAR must be positive, got %d", c.PeriodsPerYear)
	}
	if c.FrontierMixStep <= 0 {
		return fmt.Errorf("FRONTIER_MIX_STEP must be positive, got %g", c.FrontierMixStep)
	}
	if c.FrontierMixEnd < c.FrontierMixStart {
		return fmt.Errorf("FRONTIER_MIX_END %g is before FRONTIER_MIX_START %g", c.FrontierMixEnd, c.FrontierMixStart)
	}
	return nil
}

// LoggerConfig maps the configuration into logger options.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.LogLevel,
		Pretty: c.LogPretty,
	}
}

// FrontierConfig maps the configuration into frontier sweep options.
func (c *Config) FrontierConfig() optimization.FrontierConfig {
	return optimization.FrontierConfig{
		Mix: optimization.MixRange{
			Start: c.FrontierMixStart,
			End:   c.FrontierMixEnd,
			Step:  c.FrontierMixStep,
		},
		PeriodsPerYear: c.PeriodsPerYear,
		TargetMultiple: c.FrontierTargetMultiple,
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
