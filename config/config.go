package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvLocal      = "local"
	EnvProduction = "production"

	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Env  string `env:"APP_ENV" envDefault:"local"`
	Port int    `env:"PORT" envDefault:"3000"`

	// StoreDriver selects the record store backend: sqlite or mongo.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"charityevents.db"`
	MongoURI    string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDBName string `env:"MONGO_DB" envDefault:"charityevents_db"`

	SeedSampleData bool     `env:"SEED_SAMPLE_DATA" envDefault:"true"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads .env when present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StoreDriver != DriverSQLite && cfg.StoreDriver != DriverMongo {
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

// MustLoad is Load that panics, for use at startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
