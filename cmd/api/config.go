package main

import (
	"flag"
	"fmt"
	"strconv"

	"bmiguide.healthguide.org/internal/appconf"
)

// envDefault returns the environment value for key, or fallback when unset.
func envDefault(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseConfig reads command-line flags. Environment variables (BMI_PORT,
// BMI_ENV, BMI_API_KEYS, BMI_RATE_LIMIT, BMI_LOG_LEVEL) supply the defaults.
func parseConfig(args []string, getenv func(string) string) (appconf.Config, error) {
	fs := flag.NewFlagSet("bmiguide", flag.ContinueOnError)

	defaultPort, err := strconv.Atoi(envDefault(getenv, "BMI_PORT", "4000"))
	if err != nil {
		return appconf.Config{}, fmt.Errorf("invalid BMI_PORT: %w", err)
	}
	defaultRate, err := strconv.Atoi(envDefault(getenv, "BMI_RATE_LIMIT", "100"))
	if err != nil {
		return appconf.Config{}, fmt.Errorf("invalid BMI_RATE_LIMIT: %w", err)
	}

	var (
		port      int
		env       string
		apiKeys   string
		rateLimit int
		logLevel  string
	)
	fs.IntVar(&port, "port", defaultPort, "API server port")
	fs.StringVar(&env, "env", envDefault(getenv, "BMI_ENV", "production"), "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", envDefault(getenv, "BMI_API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	fs.IntVar(&rateLimit, "rate-limit", defaultRate, "Requests per second per API key (negative disables limiting)")
	fs.StringVar(&logLevel, "log-level", envDefault(getenv, "BMI_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	if port <= 0 || port > 65535 {
		return appconf.Config{}, fmt.Errorf("port out of range: %d", port)
	}

	return appconf.Config{
		Port:      port,
		Env:       appconf.EnvFlagToEnvironment(env),
		ApiKeys:   appconf.ParseAPIKeys(apiKeys),
		RateLimit: rateLimit,
		LogLevel:  appconf.ParseLogLevel(logLevel),
	}, nil
}
