package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"devd.dev/internal/content"
	"devd.dev/internal/models"
)

const (
	defaultServerAddr = ":8080"
	defaultAssetsDir  = "public/image"
)

// Config holds all application configuration
type Config struct {
	ServerAddr  string
	ContentPath string // empty means the built-in content
	AssetsDir   string // served at /image/
	Watch       bool   // reload ContentPath when it changes
	BaseTitle   string // overrides the content title when set
	Portfolio   *models.Portfolio
}

// Load reads the environment and the content it points at
func Load() (*Config, error) {
	cfg := FromEnv()
	if err := cfg.LoadContent(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads settings from the environment without touching the content
func FromEnv() *Config {
	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = defaultServerAddr
	}

	assetsDir := os.Getenv("PORTFOLIO_ASSETS_DIR")
	if assetsDir == "" {
		assetsDir = defaultAssetsDir
	}

	watch, _ := strconv.ParseBool(os.Getenv("PORTFOLIO_WATCH"))

	return &Config{
		ServerAddr:  serverAddr,
		ContentPath: os.Getenv("PORTFOLIO_CONTENT"),
		AssetsDir:   assetsDir,
		Watch:       watch,
		BaseTitle:   os.Getenv("PORTFOLIO_BASE_TITLE"),
	}
}

// LoadContent loads ContentPath into Portfolio and applies BaseTitle
func (c *Config) LoadContent() error {
	p, err := content.LoadOrDefault(c.ContentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	c.ApplyOverrides(p)
	c.Portfolio = p
	return nil
}

// ApplyOverrides applies settings that take precedence over content files
func (c *Config) ApplyOverrides(p *models.Portfolio) {
	if c.BaseTitle != "" {
		p.Title = c.BaseTitle
	}
}

// Validate reports settings that cannot work together
func (c *Config) Validate() error {
	var errs []error
	if c.ServerAddr == "" {
		errs = append(errs, errors.New("server address is empty"))
	}
	if c.Watch && c.ContentPath == "" {
		errs = append(errs, errors.New("watch needs a content file"))
	}
	if c.ContentPath != "" {
		if _, err := content.FormatFromPath(c.ContentPath); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
