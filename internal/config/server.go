package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	DefaultSmallBlind int64 `env:"DEFAULT_SMALL_BLIND" envDefault:"5"`
	DefaultBigBlind   int64 `env:"DEFAULT_BIG_BLIND" envDefault:"10"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
