package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bookstorectl", "config.yml")
}

// Load reads the config from disk and the environment. A missing config
// file is fine — defaults reproduce the classic layout (a data/
// directory next to the binary, admin/admin owner pair).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("shop.name", "BookStore")
	v.SetDefault("shop.data_dir", "data")
	v.SetDefault("shop.books_file", "books.txt")
	v.SetDefault("shop.customers_file", "customers.txt")
	v.SetDefault("owner.username", "admin")
	v.SetDefault("owner.password", "admin")

	v.SetEnvPrefix("BOOKSTORECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("BOOKSTORECTL_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
