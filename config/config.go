package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DatabasePath is the SQLite file shared by the server and the setup command.
const DatabasePath = "lixo_eletronico.db"

const (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 15 * time.Second
)

// Config holds what the environment may override: the listen address only.
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port uint   `envconfig:"PORT" default:"5000"`
}

// Load reads HOST and PORT from the environment. A variable set to the empty
// string falls back to its default.
func Load() (*Config, error) {
	for _, key := range []string{"HOST", "PORT"} {
		if v, ok := os.LookupEnv(key); ok && v == "" {
			if err := os.Unsetenv(key); err != nil {
				return nil, fmt.Errorf("unset empty %s: %w", key, err)
			}
		}
	}

	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.Port == 0 || c.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", c.Port)
	}

	return c, nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.FormatUint(uint64(c.Port), 10))
}
