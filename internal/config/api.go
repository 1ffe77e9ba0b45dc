package config

import "time"

type API struct {
	// BaseURL of the shortener backend
	BaseURL string `env:"BASE_URL,expand" envDefault:"http://localhost:5000"`
	// ShortLinkBaseURL is the public origin serving the /s/{id} redirects,
	// the backend BaseURL when empty
	ShortLinkBaseURL string        `env:"SHORT_LINK_BASE_URL,expand"`
	Timeout          time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
