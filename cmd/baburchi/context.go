package main

import (
	"log/slog"
	"os"

	"github.com/ragaeeb/baburchi-sub001/internal/config"
	"github.com/ragaeeb/baburchi-sub001/internal/correct"
	"github.com/ragaeeb/baburchi-sub001/internal/logging"
)

// commandContext carries lazily-loaded configuration and logging shared by
// every subcommand.
type commandContext struct {
	configFlag *string
	cfg        *config.Config
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

// correctionOptions builds engine options from configuration.
func (c *commandContext) correctionOptions() correct.Options {
	cfg := c.cfg
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return correct.Options{
		TypoSymbols:             cfg.TypoSymbols,
		SimilarityThreshold:     cfg.SimilarityThreshold,
		HighSimilarityThreshold: cfg.HighSimilarityThreshold,
	}
}
