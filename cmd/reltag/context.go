package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reltag/internal/catalog"
	"reltag/internal/classify"
	"reltag/internal/config"
	"reltag/internal/logging"
	"reltag/internal/scan"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	outputFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, outputFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		outputFlag:   outputFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = err
					return
				}
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) outputFormat() (outputFormat, error) {
	value := "table"
	if c.outputFlag != nil && strings.TrimSpace(*c.outputFlag) != "" {
		value = strings.ToLower(strings.TrimSpace(*c.outputFlag))
	}
	switch format := outputFormat(value); format {
	case outputTable, outputJSON, outputYAML:
		return format, nil
	}
	return "", fmt.Errorf("unsupported output format %q (use table, json, or yaml)", value)
}

func (c *commandContext) classifier() (*classify.Classifier, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return classify.NewFromConfig(cfg, logger), nil
}

func (c *commandContext) scanner() (*scan.Scanner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return scan.New(cfg, classify.NewFromConfig(cfg, logger), logger), nil
}

// openCatalog opens the configured catalog for writing.
func (c *commandContext) openCatalog() (*catalog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.Open(cfg.Catalog.Path)
}

// openCatalogReader opens the configured catalog for reports.
func (c *commandContext) openCatalogReader() (*catalog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.OpenReader(cfg.Catalog.Path)
}

// shouldRecord reports whether results go to the catalog: either the command
// asked for it or the configuration enables recording by default.
func (c *commandContext) shouldRecord(flag bool) bool {
	if flag {
		return true
	}
	cfg, err := c.ensureConfig()
	return err == nil && cfg.Catalog.Enabled
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
