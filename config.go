package tevclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk client configuration used by driver programs.
type Config struct {
	Host           string
	Port           uint16
	AutoConnect    bool
	ConnectTimeout time.Duration
}

// DefaultConfig targets a viewer on the local machine with explicit connect
// and no dial bound.
func DefaultConfig() Config {
	return Config{
		Host: DefaultHostname,
		Port: DefaultPort,
	}
}

// tevctl config.toml key mapping to client settings.
type fileConfig struct {
	Host             string `toml:"host"`
	Port             int    `toml:"port"`
	AutoConnect      bool   `toml:"auto_connect"`
	ConnectTimeoutMS int    `toml:"connect_timeout_ms"`
}

// LoadConfig overlays settings from a TOML file onto DefaultConfig. Only
// keys present in the file override defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load client config: %w", err)
	}

	if meta.IsDefined("host") {
		host := strings.TrimSpace(raw.Host)
		if host == "" {
			return Config{}, fmt.Errorf("load client config: host must not be empty")
		}
		cfg.Host = host
	}
	if meta.IsDefined("port") {
		if raw.Port < 1 || raw.Port > 65535 {
			return Config{}, fmt.Errorf("load client config: port %d out of range", raw.Port)
		}
		cfg.Port = uint16(raw.Port)
	}
	if meta.IsDefined("auto_connect") {
		cfg.AutoConnect = raw.AutoConnect
	}
	if meta.IsDefined("connect_timeout_ms") {
		if raw.ConnectTimeoutMS < 0 {
			return Config{}, fmt.Errorf("load client config: connect_timeout_ms must not be negative")
		}
		cfg.ConnectTimeout = time.Duration(raw.ConnectTimeoutMS) * time.Millisecond
	}

	return cfg, nil
}

// Options converts file configuration into client options.
func (c Config) Options() Options {
	return Options{
		AutoConnect:    c.AutoConnect,
		ConnectTimeout: c.ConnectTimeout,
	}
}
