package config

import "path/filepath"

// Config is the top-level bookstorectl configuration.
type Config struct {
	Shop  ShopConfig  `mapstructure:"shop" yaml:"shop"`
	Owner OwnerConfig `mapstructure:"owner" yaml:"owner"`
}

// ShopConfig holds the shop identity and data file locations.
type ShopConfig struct {
	Name          string `mapstructure:"name" yaml:"name"`
	DataDir       string `mapstructure:"data_dir" yaml:"data_dir"`
	BooksFile     string `mapstructure:"books_file" yaml:"books_file"`
	CustomersFile string `mapstructure:"customers_file" yaml:"customers_file"`
}

// OwnerConfig is the reserved owner credential pair. It is checked
// before any customer record and never stored in the data files.
type OwnerConfig struct {
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
}

// BooksPath returns the full path of the books data file.
func (c *Config) BooksPath() string {
	return filepath.Join(c.Shop.DataDir, c.Shop.BooksFile)
}

// CustomersPath returns the full path of the customers data file.
func (c *Config) CustomersPath() string {
	return filepath.Join(c.Shop.DataDir, c.Shop.CustomersFile)
}
