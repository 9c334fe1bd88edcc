package config

type Config struct {
	NATSURL     string `flag:"nats-url"`
	NATSInit    bool   `flag:"nats-init"`
	MemoryStore bool   `flag:"memory-store"`
	LogLevel    string `flag:"log-level"`
	ListenAddr  string `flag:"listen"`
	MetricsAddr string `flag:"metrics-listen"`
}
