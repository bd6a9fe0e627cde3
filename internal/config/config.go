package config

import (
	"fmt"

	"github.com/iftikharramnandan/chess960-fen-generator/pkg/fengen"
	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	Server struct {
		Host string `envconfig:"SERVER_HOST"`
		Port string `envconfig:"SERVER_PORT" default:"8080"`
	}
	Database struct {
		Address      string `envconfig:"MONGO_ADDRESS"`
		DatabaseName string `envconfig:"MONGO_DATABASE" default:"fengen"`
		Collection   string `envconfig:"MONGO_COLLECTION" default:"positions"`
	}
	Log struct {
		Level       string `envconfig:"LOG_LEVEL" default:"info"`
		Development bool   `envconfig:"LOG_DEVELOPMENT"`
	}
	Generator struct {
		DefaultColor string `envconfig:"DEFAULT_COLOR" default:"white"`
		RecentLimit  int    `envconfig:"RECENT_LIMIT" default:"20"`
	}
}

func InitConfig() (*Configuration, error) {
	cfg := &Configuration{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.DefaultColor(); err != nil {
		return nil, err
	}
	if cfg.Generator.RecentLimit <= 0 {
		return nil, fmt.Errorf("RECENT_LIMIT should be positive, got %d", cfg.Generator.RecentLimit)
	}
	return cfg, nil
}

func (c *Configuration) DefaultColor() (fengen.Color, error) {
	return fengen.ParseColor(c.Generator.DefaultColor)
}

// Addr is the listen address for the HTTP server.
func (c *Configuration) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// PersistenceEnabled reports whether generated positions go to MongoDB.
func (c *Configuration) PersistenceEnabled() bool {
	return c.Database.Address != ""
}
