package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lleo/go-hashtable"
	"github.com/lleo/go-hashtable/internal/assert"
	"github.com/lleo/go-hashtable/internal/cfg"
	"github.com/lleo/go-hashtable/internal/cli"
)

var rootCmd = cli.Init("hashtable", "Exercises a separately chained hash table")

func MustExecute(ctx context.Context) {
	initBench()
	initCount()
	rootCmd.MustExecute(ctx)
}

// setup loads the configuration and installs the matching zap logger as the
// hashtable package logger. The returned func flushes the logger. Failing to
// build a logger is fatal.
func setup(configPath string) (cfg.Config, *zap.Logger, func(), error) {
	config, err := cfg.Load(configPath)
	if err != nil {
		return config, nil, nil, errors.Wrap(err, "load config")
	}

	var log *zap.Logger
	if config.Environment == cfg.EnvDev {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	assert.NoError(err)

	hashtable.SetLogger(log)

	var done = func() {
		hashtable.SetLogger(nil)
		_ = log.Sync()
	}
	return config, log, done, nil
}
