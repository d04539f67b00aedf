package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// PgURL is the write primary. PgReplicaURL is optional; reads go to the
	// primary when it is empty.
	PgURL         string        `env:"PG_URL,required,notEmpty"`
	PgReplicaURL  string        `env:"PG_REPLICA_URL"`
	PgPoolMax     int           `env:"PG_POOL_MAX" envDefault:"10"`
	PgConnTimeout time.Duration `env:"PG_CONN_TIMEOUT" envDefault:"20s"`

	ApplyMigrations bool `env:"APPLY_MIGRATIONS" envDefault:"true"`

	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
