package cfg

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

const envPrefix = "HASHTABLE"

type Config struct {
	Environment string `default:"dev"`

	Hasher      string  `default:"xxh3"`
	Keys        int     `default:"100000"`
	RemoveRatio float64 `default:"0.5" split_words:"true"`
}

// Load reads HASHTABLE_* variables, first loading path as a .env file when
// it is non-empty. A missing default ".env" is not an error.
func Load(path string) (Config, error) {
	var config Config

	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return config, errors.Wrapf(err, "load env file %s", path)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return config, errors.Wrap(err, "load .env")
		}
	}

	if err := envconfig.Process(envPrefix, &config); err != nil {
		return config, errors.Wrap(err, "process env")
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.Environment != EnvDev && c.Environment != EnvProd {
		return errors.Errorf("invalid environment %q, want %q or %q", c.Environment, EnvDev, EnvProd)
	}
	if c.Keys < 0 {
		return errors.Errorf("invalid key count %d", c.Keys)
	}
	if c.RemoveRatio < 0 || c.RemoveRatio > 1 {
		return errors.Errorf("invalid remove ratio %g, want [0,1]", c.RemoveRatio)
	}
	return nil
}
