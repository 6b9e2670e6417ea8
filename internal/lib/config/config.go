package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/vukan322/devdash/internal/core"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

type Config struct {
	Env            string        `yaml:"env" env:"DEVDASH_ENV" env-default:"local"`
	Timezone       string        `yaml:"timezone" env:"DEVDASH_TIMEZONE" env-default:"Local"`
	RefreshTimeout time.Duration `yaml:"refresh_timeout" env:"DEVDASH_REFRESH_TIMEOUT" env-default:"20s"`
	HTTPServer     HTTPServer    `yaml:"http_server"`
	Handles        Handles       `yaml:"handles"`
	Upstream       Upstream      `yaml:"upstream"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"DEVDASH_HTTP_ADDRESS" env-default:"localhost:8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Handles struct {
	GitHub   string `yaml:"github" env:"DEVDASH_GITHUB_USER"`
	LeetCode string `yaml:"leetcode" env:"DEVDASH_LEETCODE_USER"`
}

type Upstream struct {
	GitHubBaseURL string        `yaml:"github_base_url" env:"DEVDASH_GITHUB_BASE_URL" env-default:"https://api.github.com"`
	LeetCodeURL   string        `yaml:"leetcode_url" env:"DEVDASH_LEETCODE_URL" env-default:"https://leetcode.com/graphql"`
	UserAgent     string        `yaml:"user_agent" env:"DEVDASH_USER_AGENT" env-default:"devdash/0.1"`
	Timeout       time.Duration `yaml:"timeout" env:"DEVDASH_UPSTREAM_TIMEOUT" env-default:"10s"`
	GitHubToken   string        `yaml:"github_token" env:"DEVDASH_GITHUB_TOKEN"`
}

// Load reads the config file at path, or only the environment when path is
// empty. Environment variables override file values.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if cfg.Env != EnvLocal && cfg.Env != EnvProd {
		return nil, fmt.Errorf("unknown env %q", cfg.Env)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ResolvePath picks the config path: flag > CONFIG_PATH env > none.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}

func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// HandlesWith returns the configured handles with non-empty overrides applied.
func (c *Config) HandlesWith(github, leetcode string) core.Handles {
	h := core.Handles{GitHub: c.Handles.GitHub, LeetCode: c.Handles.LeetCode}
	if github != "" {
		h.GitHub = github
	}
	if leetcode != "" {
		h.LeetCode = leetcode
	}
	return h
}
