package app

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment. The data file is the client's local
// storage; everything else tunes logging.
type Config struct {
	DataFile  string `env:"FUTUREX_DATA_FILE" env-default:"futurex.db"`
	Env       string `env:"ENV" env-default:"dev"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"warn"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

// LoadConfig populates Config from the environment, falling back to the
// defaults above.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config from environment: %w", err)
	}
	return cfg, nil
}
