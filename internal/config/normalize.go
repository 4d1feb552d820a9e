package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeClassify()
	c.normalizeScan()
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeProbe()
	return c.normalizeLogging()
}

func (c *Config) normalizeClassify() {
	groups := make([]string, 0, len(c.Classify.ExtraGroups))
	seen := make(map[string]struct{}, len(c.Classify.ExtraGroups))
	for _, group := range c.Classify.ExtraGroups {
		trimmed := strings.TrimSpace(group)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		groups = append(groups, trimmed)
	}
	c.Classify.ExtraGroups = groups

	exts := make([]string, 0, len(c.Classify.ExtraVideoExtensions))
	seenExt := make(map[string]struct{}, len(c.Classify.ExtraVideoExtensions))
	for _, ext := range c.Classify.ExtraVideoExtensions {
		normalized := NormalizeExtension(ext)
		if normalized == "" {
			continue
		}
		if _, exists := seenExt[normalized]; exists {
			continue
		}
		seenExt[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	c.Classify.ExtraVideoExtensions = exts
}

// NormalizeExtension lowercases an extension and ensures a single leading dot.
func NormalizeExtension(ext string) string {
	trimmed := strings.ToLower(strings.TrimSpace(ext))
	trimmed = strings.TrimLeft(trimmed, ".")
	if trimmed == "" {
		return ""
	}
	return "." + trimmed
}

func (c *Config) normalizeScan() {
	if c.Scan.Workers <= 0 {
		c.Scan.Workers = defaultWorkers()
	}
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv("RELTAG_CATALOG"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.Path = strings.TrimSpace(value)
		c.Catalog.Enabled = true
	}
	if strings.TrimSpace(c.Catalog.Path) == "" {
		c.Catalog.Path = defaultCatalogPath
	}
	var err error
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeProbe() {
	c.Probe.FFprobeBinary = strings.TrimSpace(c.Probe.FFprobeBinary)
	if c.Probe.FFprobeBinary == "" {
		c.Probe.FFprobeBinary = defaultFFprobeBinary
	}
	if c.Probe.TimeoutSeconds <= 0 {
		c.Probe.TimeoutSeconds = defaultProbeTimeout
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("RELTAG_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.MaxAgeDays < 0 {
		c.Logging.MaxAgeDays = 0
	}
	return nil
}
