// Package config loads environment variables into tagged struct types.
//
// Load reads a .env file once per process (missing files are fine), then
// parses the environment into the given struct using caarlos0/env tags:
//
//	type AppConfig struct {
//		Port      int    `env:"PORT" envDefault:"8555"`
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// MustLoad panics instead of returning the error; use it for configuration
// the process cannot start without.
package config
