package domain

import (
	"fmt"
	"net"
	"strconv"
)

// DefaultPort is the fixed TCP port the server listens on.
const DefaultPort = 8000

// Config describes what is served and where.
type Config struct {
	// Host is the interface to bind; empty means all interfaces.
	Host string
	Port int
	// Root is the directory served, relative to the process working directory.
	Root    string
	Headers HeaderSet
}

// DefaultConfig serves the working directory on every interface at port 8000.
func DefaultConfig() Config {
	return Config{
		Host:    "",
		Port:    DefaultPort,
		Root:    ".",
		Headers: FrameHeaders(),
	}
}

// Addr is the listen address, e.g. ":8000".
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL is the human-facing address announced at startup.
func (c Config) URL() string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, strconv.Itoa(c.Port)))
}
