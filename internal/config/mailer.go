package config

import "time"

type Mailer struct {
	BaseURL string        `env:"MAILER_BASE_URL,required"`
	From    string        `env:"MAILER_FROM" envDefault:"noreply@harbourhub.example"`
	APIKey  string        `env:"MAILER_API_KEY,required"`
	Timeout time.Duration `env:"MAILER_TIMEOUT" envDefault:"10s"`
}
