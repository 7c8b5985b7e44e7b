package config

import "github.com/caarlos0/env/v11"

type TrainerConfig struct {
	PlayerName    string `env:"TRAINER_PLAYER_NAME" envDefault:"Hero"`
	StartingStack int64  `env:"TRAINER_STARTING_STACK" envDefault:"1000"`
	SmallBlind    int64  `env:"TRAINER_SMALL_BLIND" envDefault:"5"`
	BigBlind      int64  `env:"TRAINER_BIG_BLIND" envDefault:"10"`
	Opponents     int    `env:"TRAINER_OPPONENTS" envDefault:"3"`
	FixedLimit    bool   `env:"TRAINER_FIXED_LIMIT" envDefault:"false"`
	PostgresDSN   string `env:"POSTGRES_DSN"`
}

func LoadTrainer() (TrainerConfig, error) {
	var cfg TrainerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
