package config

import (
	"net"
	"strconv"
)

// MetricsConfig controls the Prometheus collectors and their HTTP endpoint.
// With Enabled set and Port zero the collectors still run, which lets a
// scripted session refresh its gauges without opening a socket.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`
	Host    string `mapstructure:"host"`
	Path    string `mapstructure:"path"`
}

// Serves reports whether an HTTP endpoint should be started.
func (m MetricsConfig) Serves() bool {
	return m.Enabled && m.Port > 0
}

// Address is the listen address of the endpoint, e.g. "localhost:9464".
func (m MetricsConfig) Address() string {
	return net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
}

// URL is the scrape URL shown to the user.
func (m MetricsConfig) URL() string {
	return "http://" + m.Address() + m.Path
}
