package config

import "time"

type HTTP struct {
	BaseURL string  `env:"BASE_URL,expand" envDefault:"/"`
	Address string  `env:"ADDRESS,expand" envDefault:":3000"`
	Session Session `envPrefix:"SESSION_"`
	Assets  Assets  `envPrefix:"ASSETS_"`
	Metrics Metrics `envPrefix:"METRICS_"`
	Pprof   Pprof   `envPrefix:"PPROF_"`
}

type Session struct {
	// Store selects the session backend, ie "cookie:" or "file:///var/lib/shortener/sessions"
	Store  string   `env:"STORE,expand" envDefault:"cookie:"`
	Name   string   `env:"NAME" envDefault:"shortener"`
	Keys   []string `env:"KEYS" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"24h"`
}

type Assets struct {
	MaxAge time.Duration `env:"MAX_AGE" envDefault:"1h"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Token, when set, must be sent as a bearer token to scrape the metrics
	Token string `env:"TOKEN,expand"`
}

type Pprof struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
}
