package flags

import (
	"fmt"
	"slices"

	libnats "github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var NATSUrl = &cli.StringFlag{
	Name:    "nats-url",
	Aliases: []string{"n"},
	Usage:   "The URL of the NATS server backing the key-value store",
	Value:   libnats.DefaultURL,
	Sources: cli.EnvVars("NATS_URL"),
}

var InitNATS = &cli.BoolFlag{
	Name:    "nats-init",
	Aliases: []string{"i"},
	Usage:   "Create the key-value bucket on the NATS server before binding it",
	Value:   false,
	Sources: cli.EnvVars("NATS_INIT"),
}

var MemoryStore = &cli.BoolFlag{
	Name:    "memory-store",
	Usage:   "Skip NATS and keep all data in memory for the lifetime of the process",
	Value:   false,
	Sources: cli.EnvVars("MEMORY_STORE"),
}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var Listen = &cli.StringFlag{
	Name:    "listen",
	Usage:   "The address the API server listens on",
	Value:   ":8080",
	Sources: cli.EnvVars("LISTEN"),
}

var MetricsListen = &cli.StringFlag{
	Name:    "metrics-listen",
	Usage:   "The address the metrics server listens on",
	Value:   ":9090",
	Sources: cli.EnvVars("METRICS_LISTEN"),
}
