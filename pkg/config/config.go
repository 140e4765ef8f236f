package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AmoCRM AmoCRM
	Logger Logger
}

type AmoCRM struct {
	Domain  string        `env:"AMOCRM_DOMAIN"`
	Token   string        `env:"AMOCRM_TOKEN"`
	BaseURL string        `env:"AMOCRM_BASE_URL" envDefault:""` // https://<domain> when empty
	Timeout time.Duration `env:"AMOCRM_TIMEOUT"  envDefault:"10s"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Dir    string `env:"LOG_DIR"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// URL returns the API root, e.g. https://example.amocrm.ru.
func (c AmoCRM) URL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}

	return "https://" + c.Domain
}
