package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

type SearchConfig struct {
	// MaxTreeDepth bounds the relation-tree walk regardless of the
	// distance a caller asks for.
	MaxTreeDepth int `toml:"max_tree_depth"`
	// FrontierFetch caps concurrent neighbor fetches per BFS level in
	// the path finder.
	FrontierFetch int `toml:"frontier_fetch"`
}

type Config struct {
	Memgraph MemgraphConfig `toml:"memgraph"`
	Server   ServerConfig   `toml:"server"`
	Search   SearchConfig   `toml:"search"`
}

func Default() *Config {
	return &Config{
		Memgraph: MemgraphConfig{URI: "bolt://localhost:7687"},
		Server:   ServerConfig{Port: 8080},
		Search:   SearchConfig{MaxTreeDepth: 32, FrontierFetch: 8},
	}
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault falls back to the defaults when the file is absent; a
// present but unreadable or invalid file is still an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		c.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		c.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		c.Memgraph.Password = v
	}
	if v := os.Getenv("LEXIGRAPH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
}
