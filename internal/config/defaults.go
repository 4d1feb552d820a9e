package config

import "runtime"

const (
	defaultConfigPath        = "~/.config/reltag/config.toml"
	defaultProjectConfigName = "reltag.toml"
	defaultCatalogPath       = "~/.local/share/reltag/catalog.db"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogMaxSizeMB      = 10
	defaultLogMaxBackups     = 3
	defaultLogMaxAgeDays     = 30
	defaultFFprobeBinary     = "ffprobe"
	defaultProbeTimeout      = 30
	maxScanWorkers           = 256
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Classify: Classify{
			ExtraGroups:          []string{},
			ExtraVideoExtensions: []string{},
		},
		Scan: Scan{
			Workers: defaultWorkers(),
		},
		Catalog: Catalog{
			Enabled: false,
			Path:    defaultCatalogPath,
		},
		Probe: Probe{
			FFprobeBinary:  defaultFFprobeBinary,
			TimeoutSeconds: defaultProbeTimeout,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}

func defaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
