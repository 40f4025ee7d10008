package cmd

import "time"

// Config carries everything the storefront needs to run: where the remote
// API lives, how to verify credentials, and where local state is kept.
type Config struct {
	HTTPPort        string
	APIBaseURL      string
	JWTSecret       string
	LocalStorePath  string
	CartTTL         time.Duration
	SessionTTL      time.Duration
	JanitorSchedule string
}
