package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "config/config.yaml"

	// DefaultAllowedOriginPattern admits browsers served from the 192.168/16 LAN.
	DefaultAllowedOriginPattern = `^https?://192\.168\.\d{1,3}\.\d{1,3}(:\d+)?$`
)

// Owner cache drivers.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type ServerConfig struct {
	Port                 int    `yaml:"port"`
	Mode                 string `yaml:"mode"` // gin mode: debug, release, test
	AllowedOriginPattern string `yaml:"allowed_origin_pattern"`
	LegacyAmountGet      *bool  `yaml:"legacy_amount_get"`
}

type HubSpotConfig struct {
	APIToken string        `yaml:"api_token"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

type QuotesConfig struct {
	EnrichConcurrency int `yaml:"enrich_concurrency"`
}

type OwnerCacheConfig struct {
	Driver        string        `yaml:"driver"`
	TTL           time.Duration `yaml:"ttl"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	HubSpot    HubSpotConfig    `yaml:"hubspot"`
	Quotes     QuotesConfig     `yaml:"quotes"`
	OwnerCache OwnerCacheConfig `yaml:"owner_cache"`
}

// LoadConfig reads the YAML file at path, then applies environment
// overrides and defaults. A missing file at DefaultPath is not an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err) && path == DefaultPath:
		default:
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides file values with any variables lookup finds.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("GIN_MODE"); ok && v != "" {
		c.Server.Mode = v
	}
	if v, ok := lookup("ALLOWED_ORIGIN_PATTERN"); ok && v != "" {
		c.Server.AllowedOriginPattern = v
	}
	if v, ok := lookup("LEGACY_AMOUNT_GET"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LEGACY_AMOUNT_GET: %w", err)
		}
		c.Server.LegacyAmountGet = &b
	}
	if v, ok := lookup("HUBSPOT_API_TOKEN"); ok && v != "" {
		c.HubSpot.APIToken = v
	}
	if v, ok := lookup("HUBSPOT_BASE_URL"); ok && v != "" {
		c.HubSpot.BaseURL = v
	}
	if v, ok := lookup("HUBSPOT_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HUBSPOT_TIMEOUT: %w", err)
		}
		c.HubSpot.Timeout = d
	}
	if v, ok := lookup("ENRICH_CONCURRENCY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ENRICH_CONCURRENCY: %w", err)
		}
		c.Quotes.EnrichConcurrency = n
	}
	if v, ok := lookup("OWNER_CACHE"); ok && v != "" {
		c.OwnerCache.Driver = v
	}
	if v, ok := lookup("OWNER_CACHE_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("OWNER_CACHE_TTL: %w", err)
		}
		c.OwnerCache.TTL = d
	}
	if v, ok := lookup("REDIS_ADDR"); ok && v != "" {
		c.OwnerCache.RedisAddr = v
	}
	if v, ok := lookup("REDIS_PASSWORD"); ok && v != "" {
		c.OwnerCache.RedisPassword = v
	}
	return nil
}

func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.Server.AllowedOriginPattern == "" {
		c.Server.AllowedOriginPattern = DefaultAllowedOriginPattern
	}
	if c.Server.LegacyAmountGet == nil {
		on := true
		c.Server.LegacyAmountGet = &on
	}
	if c.HubSpot.BaseURL == "" {
		c.HubSpot.BaseURL = "https://api.hubapi.com"
	}
	if c.HubSpot.Timeout == 0 {
		c.HubSpot.Timeout = 30 * time.Second
	}
	if c.Quotes.EnrichConcurrency == 0 {
		c.Quotes.EnrichConcurrency = 1
	}
	if c.OwnerCache.Driver == "" {
		c.OwnerCache.Driver = CacheNone
	}
	if c.OwnerCache.TTL == 0 {
		c.OwnerCache.TTL = 15 * time.Minute
	}
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Server.Port)
	}
	if _, err := regexp.Compile(c.Server.AllowedOriginPattern); err != nil {
		return fmt.Errorf("config error: allowed_origin_pattern: %w", err)
	}
	if c.HubSpot.Timeout < 0 {
		return fmt.Errorf("config error: hubspot timeout must be positive")
	}
	if c.Quotes.EnrichConcurrency < 1 {
		return fmt.Errorf("config error: enrich_concurrency must be at least 1")
	}
	switch c.OwnerCache.Driver {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.OwnerCache.RedisAddr == "" {
			return fmt.Errorf("config error: owner_cache redis driver needs redis_addr")
		}
	default:
		return fmt.Errorf("config error: unknown owner_cache driver %q", c.OwnerCache.Driver)
	}
	return nil
}
