package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateClassify(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateClassify() error {
	for _, group := range c.Classify.ExtraGroups {
		if strings.ContainsAny(group, "[]") {
			return fmt.Errorf("classify.extra_groups: %q must not contain brackets", group)
		}
	}
	for _, ext := range c.Classify.ExtraVideoExtensions {
		if ext == "" || strings.ContainsAny(strings.TrimPrefix(ext, "."), "./\\ ") {
			return fmt.Errorf("classify.extra_video_extensions: %q is not a plain extension", ext)
		}
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Workers > maxScanWorkers {
		return fmt.Errorf("scan.workers must be at most %d", maxScanWorkers)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Enabled && strings.TrimSpace(c.Catalog.Path) == "" {
		return errors.New("catalog.path must be set when catalog.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
}
