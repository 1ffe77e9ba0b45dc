package config

type History struct {
	PageSize int `env:"PAGE_SIZE" envDefault:"10"`
}
