package evaluator

import "github.com/sirupsen/logrus"

type Configuration struct {
	// Glob pattern selecting the placement spec files to evaluate, e.g. "placements/**/*.yaml".
	Placements string `validate:"required"`
	// If set, metrics for all evaluated placements are written to this file in the prometheus text format.
	MetricsFile string
	Logging     LoggingConfig
}

type LoggingConfig struct {
	Level logrus.Level `validate:"lte=6"`
}

// DefaultConfiguration returns the values used for anything not set in config files, the environment or flags.
func DefaultConfiguration() Configuration {
	return Configuration{
		Logging: LoggingConfig{
			Level: logrus.InfoLevel,
		},
	}
}
