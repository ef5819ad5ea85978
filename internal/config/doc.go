// Package config loads trivia API configuration from the environment.
//
// A .env file in the working directory is read first by LoadDotEnv; real
// environment variables always win over it. Load then applies defaults and
// Validate reports every problem at once:
//
//	_ = config.LoadDotEnv()
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // err lists all missing or invalid settings
//	}
//
// PASS_HASH is the only variable without a default. The database is
// addressed by DB_URL (or DATABASE_URL) or by DB_HOST and DB_PORT.
package config
