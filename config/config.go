// Package config loads and saves the bbprs configuration file, a YAML
// list of Bitbucket hosts the user has logged in to. Tokens live in the
// system keyring, never here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/nhle/bbprs/bitbucket"
)

// Host is one configured Bitbucket Server instance.
type Host struct {
	// ID is the unique identifier for this host entry, used as the
	// keyring key suffix.
	ID string `mapstructure:"id" yaml:"id"`

	// Name is the user-defined label for this host.
	Name string `mapstructure:"name" yaml:"name"`

	// BaseURL is the root URL of the Bitbucket instance.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Username is the account the token belongs to.
	Username string `mapstructure:"username" yaml:"username"`

	// State is the default state filter for fetches from this host.
	State string `mapstructure:"state" yaml:"state"`

	// PageSize is the default page size for fetches from this host.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`
}

// Config is the top-level bbprs configuration.
type Config struct {
	Hosts []Host `mapstructure:"hosts" yaml:"hosts"`
}

// DefaultPath returns the default path for the configuration file,
// located at ~/.config/bbprs/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "bbprs", "config.yaml")
}

// Load reads the configuration from the given YAML file path using
// Viper. A missing file is not an error; it yields an empty config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return &Config{}, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	for i := range cfg.Hosts {
		if cfg.Hosts[i].State == "" {
			cfg.Hosts[i].State = string(bitbucket.StateAll)
		}
		if cfg.Hosts[i].PageSize == 0 {
			cfg.Hosts[i].PageSize = 50
		}
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file at path, creating parent
// directories if needed.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("hosts", cfg.Hosts)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

// AddHost appends a new host entry with a fresh ID and returns it.
func (c *Config) AddHost(name, baseURL, username string) Host {
	h := Host{
		ID:       uuid.NewString(),
		Name:     name,
		BaseURL:  baseURL,
		Username: username,
		State:    string(bitbucket.StateAll),
		PageSize: 50,
	}
	c.Hosts = append(c.Hosts, h)
	return h
}

// RemoveHost deletes the host entry with the given ID and reports
// whether it existed.
func (c *Config) RemoveHost(id string) bool {
	for i, h := range c.Hosts {
		if h.ID == id {
			c.Hosts = append(c.Hosts[:i], c.Hosts[i+1:]...)
			return true
		}
	}
	return false
}

// FindHost looks a host up by name or ID. With an empty name it returns
// the sole configured host, if there is exactly one.
func (c *Config) FindHost(name string) (Host, error) {
	if name == "" {
		if len(c.Hosts) == 1 {
			return c.Hosts[0], nil
		}
		return Host{}, fmt.Errorf(
			"%d hosts configured; pick one with -host", len(c.Hosts),
		)
	}
	for _, h := range c.Hosts {
		if h.Name == name || h.ID == name {
			return h, nil
		}
	}
	return Host{}, fmt.Errorf("no host named %q in config", name)
}
