package main

import (
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 string        `env:"PORT,default=3001"`
	LogLevel             string        `env:"LOG_LEVEL,default=info"`
	RateLimitPerMinute   int           `env:"RATE_LIMIT_PER_MINUTE,default=120"`
	GroupMonitorInterval time.Duration `env:"GROUP_MONITOR_INTERVAL,default=10s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func MustLoadConfig() *Config {
	godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		panic(err)
	}
	return &config
}
