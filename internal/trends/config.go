package trends

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	BaseURL         string        `env:"TRENDS_BASE_URL" envDefault:"https://trends.google.com"`
	HostLanguage    string        `env:"TRENDS_HL" envDefault:"en-US"`
	TimezoneOffset  int           `env:"TRENDS_TZ" envDefault:"360"`
	Geo             string        `env:"TRENDS_GEO" envDefault:"ID"`
	Timeout         time.Duration `env:"TRENDS_TIMEOUT" envDefault:"30s"`
	RequestInterval time.Duration `env:"TRENDS_REQUEST_INTERVAL" envDefault:"1s"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	opts := env.Options{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, err
	}
	return cfg, nil
}
