package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/bookstorectl/internal/config"
)

func TestBooksPath(t *testing.T) {
	cfg := &config.Config{
		Shop: config.ShopConfig{DataDir: "data", BooksFile: "books.txt"},
	}
	want := filepath.Join("data", "books.txt")
	if got := cfg.BooksPath(); got != want {
		t.Errorf("BooksPath = %q, want %q", got, want)
	}
}

func TestCustomersPath(t *testing.T) {
	cfg := &config.Config{
		Shop: config.ShopConfig{DataDir: "/var/lib/shop", CustomersFile: "customers.txt"},
	}
	want := filepath.Join("/var/lib/shop", "customers.txt")
	if got := cfg.CustomersPath(); got != want {
		t.Errorf("CustomersPath = %q, want %q", got, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shop.BooksFile != "books.txt" {
		t.Errorf("BooksFile = %q, want %q", cfg.Shop.BooksFile, "books.txt")
	}
	if cfg.Shop.CustomersFile != "customers.txt" {
		t.Errorf("CustomersFile = %q, want %q", cfg.Shop.CustomersFile, "customers.txt")
	}
	if cfg.Owner.Username != "admin" || cfg.Owner.Password != "admin" {
		t.Errorf("owner pair = %q/%q, want admin/admin", cfg.Owner.Username, cfg.Owner.Password)
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}
