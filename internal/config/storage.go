package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN string `env:"DSN,expand" envDefault:"data/store.sqlite"`
	// SubmissionTTL bounds how long a consumed submission token is remembered
	SubmissionTTL time.Duration `env:"SUBMISSION_TTL" envDefault:"24h"`
	// RecentLinks is the number of short links kept per visitor
	RecentLinks int `env:"RECENT_LINKS" envDefault:"5"`
}
