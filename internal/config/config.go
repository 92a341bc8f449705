package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		BodyLimitKB int    `yaml:"body_limit_kb"`
		Version     string `yaml:"version"`
	} `yaml:"server"`

	LLM struct {
		Provider     string  `yaml:"provider"`
		BaseURL      string  `yaml:"base_url"`
		APIKey       string  `yaml:"api_key"`
		Model        string  `yaml:"model"`
		Temperature  float64 `yaml:"temperature"`
		MaxTokens    int     `yaml:"max_tokens"`
		TimeoutSec   int     `yaml:"timeout_seconds"`
		StrictDecode bool    `yaml:"strict_decode"`
	} `yaml:"llm"`

	Logging struct {
		Level       string `yaml:"level"`
		Color       bool   `yaml:"color"`
		BufferLines int    `yaml:"buffer_lines"`
	} `yaml:"logging"`
}

// provider presets for OpenAI-compatible endpoints
var providers = map[string]struct {
	baseURL string
	model   string
}{
	"groq":   {"https://api.groq.com/openai/v1", "llama-3.1-70b-versatile"},
	"openai": {"https://api.openai.com/v1", "gpt-4o-mini"},
	"ollama": {"http://localhost:11434/v1", "llama3.1"},
}

// Default returns the configuration used when no file is present
func Default() *Config {
	var c Config
	c.Server.Host = "0.0.0.0"
	c.Server.Port = 3000
	c.Server.BodyLimitKB = 512
	c.Server.Version = "1.0.0"

	c.LLM.Provider = "groq"
	c.LLM.Temperature = 0.3
	c.LLM.MaxTokens = 4096
	c.LLM.TimeoutSec = 60

	c.Logging.Level = "info"
	c.Logging.BufferLines = 1000
	return &c
}

// Load reads the YAML file at path on top of the defaults, then applies
// .env and environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// .env is optional
	_ = godotenv.Load()

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	c.Server.Host = env.Str("HOST", c.Server.Host)
	c.Server.Port = env.Int("PORT", c.Server.Port)

	// switching provider drops the endpoint and model of the file's provider
	if p := env.Str("LLM_PROVIDER", ""); p != "" && !strings.EqualFold(p, c.LLM.Provider) {
		c.LLM.Provider = p
		c.LLM.BaseURL = ""
		c.LLM.Model = ""
	}
	c.LLM.BaseURL = env.Str("LLM_API_BASE", c.LLM.BaseURL)
	c.LLM.APIKey = env.Str("GROQ_API_KEY", c.LLM.APIKey)
	c.LLM.APIKey = env.Str("LLM_API_KEY", c.LLM.APIKey)
	c.LLM.Model = env.Str("LLM_MODEL", c.LLM.Model)
	c.LLM.Temperature = env.Float("LLM_TEMPERATURE", c.LLM.Temperature)
	c.LLM.MaxTokens = env.Int("LLM_MAX_TOKENS", c.LLM.MaxTokens)
	if timeout := env.Duration("LLM_TIMEOUT", 0); timeout != 0 {
		if timeout < time.Second {
			return fmt.Errorf("LLM_TIMEOUT %s is below one second", timeout)
		}
		c.LLM.TimeoutSec = int(timeout / time.Second)
	}
	if strict, err := strconv.ParseBool(env.Str("LLM_STRICT_DECODE", "")); err == nil {
		c.LLM.StrictDecode = strict
	}

	c.Logging.Level = env.Str("LOG_LEVEL", c.Logging.Level)
	return nil
}

// resolve fills provider defaults and checks the result
func (c *Config) resolve() error {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	preset, ok := providers[c.LLM.Provider]
	if !ok && c.LLM.BaseURL == "" {
		return fmt.Errorf("unknown llm provider %q and no base_url set", c.LLM.Provider)
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = preset.baseURL
	}
	if c.LLM.Model == "" {
		c.LLM.Model = preset.model
	}
	if c.LLM.Model == "" {
		return errors.New("llm model is not set")
	}
	if c.LLM.TimeoutSec < 1 {
		return fmt.Errorf("invalid llm timeout_seconds %d", c.LLM.TimeoutSec)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Addr is the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LLMTimeout is the per-completion HTTP timeout
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLM.TimeoutSec) * time.Second
}
