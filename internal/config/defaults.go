package config

const (
	defaultSessionDir     = "~/.local/share/photofix/session"
	defaultLogDir         = "~/.local/share/photofix/logs"
	defaultDownloadDir    = "~/Downloads"
	defaultTickIntervalMS = 200
	defaultGraceDelayMS   = 500
	defaultModel          = "Kontext Pro"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SessionDir:  defaultSessionDir,
			LogDir:      defaultLogDir,
			DownloadDir: defaultDownloadDir,
		},
		Processing: Processing{
			TickIntervalMS: defaultTickIntervalMS,
			GraceDelayMS:   defaultGraceDelayMS,
			Model:          defaultModel,
		},
		Feed: Feed{
			SeedSamples: true,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
