package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/journal"
	ConfigFileName    = "journal.yml"
)

// Config holds all journal server settings.
type Config struct {
	// DatabaseURL is the postgres connection string for the entries table
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// AuthUsername is the single operator login name
	AuthUsername string `yaml:"auth_username" json:"auth_username"`

	// AuthPassword is the operator password, raw or as a bcrypt hash.
	// Raw values are hashed during Load so the plaintext never leaves
	// this package.
	AuthPassword string `yaml:"auth_password" json:"-"`

	// SessionSecret signs the session cookie
	SessionSecret string `yaml:"session_secret" json:"-"`

	// AuthSecret signs the identity ticket carried inside the session
	AuthSecret string `yaml:"auth_secret" json:"-"`

	// BindAddress and Port for the HTTP listener
	BindAddress string `yaml:"bind_address" json:"bind_address"`
	Port        int    `yaml:"port" json:"port"`

	// Debug enables verbose SQL logging and template hot-reload
	Debug bool `yaml:"debug" json:"debug"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func newDefault() *Config {
	return &Config{
		DatabaseURL:   "postgres://localhost:5432/learning_journal?sslmode=disable",
		AuthUsername:  "admin",
		AuthPassword:  "secret",
		SessionSecret: "itsaseekrit",
		AuthSecret:    "anotherseekrit",
		BindAddress:   "0.0.0.0",
		Port:          5000,
		Debug:         true,
		sources:       make(map[string]string),
	}
}

func attributeNames() []string {
	return []string{
		"database_url", "auth_username", "auth_password",
		"session_secret", "auth_secret", "bind_address", "port", "debug",
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("JOURNAL_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	hash, err := normalizePasswordHash(config.AuthPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash AUTH_PASSWORD: %w", err)
	}
	config.AuthPassword = hash

	return config, nil
}

// normalizePasswordHash accepts either a raw password or an existing bcrypt
// hash and always returns a bcrypt hash.
func normalizePasswordHash(password string) (string, error) {
	if strings.HasPrefix(password, "$2a$") ||
		strings.HasPrefix(password, "$2b$") ||
		strings.HasPrefix(password, "$2y$") {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (c *Config) applyFileConfig(file *Config) {
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.AuthUsername != "" {
		c.AuthUsername = file.AuthUsername
		c.sources["auth_username"] = "file"
	}
	if file.AuthPassword != "" {
		c.AuthPassword = file.AuthPassword
		c.sources["auth_password"] = "file"
	}
	if file.SessionSecret != "" {
		c.SessionSecret = file.SessionSecret
		c.sources["session_secret"] = "file"
	}
	if file.AuthSecret != "" {
		c.AuthSecret = file.AuthSecret
		c.sources["auth_secret"] = "file"
	}
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("AUTH_USERNAME"); val != "" {
		c.AuthUsername = val
		c.sources["auth_username"] = "environment"
	}
	if val := os.Getenv("AUTH_PASSWORD"); val != "" {
		c.AuthPassword = val
		c.sources["auth_password"] = "environment"
	}
	if val := os.Getenv("JOURNAL_SESSION_SECRET"); val != "" {
		c.SessionSecret = val
		c.sources["session_secret"] = "environment"
	}
	if val := os.Getenv("JOURNAL_AUTH_SECRET"); val != "" {
		c.AuthSecret = val
		c.sources["auth_secret"] = "environment"
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("DEBUG"); val != "" {
		c.Debug = val == "true" || val == "1"
		c.sources["debug"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

// Attributes returns all configuration attributes with their values and
// sources. Secret values are redacted.
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "database_url", Value: c.DatabaseURL, Source: c.Source("database_url")},
		{Name: "auth_username", Value: c.AuthUsername, Source: c.Source("auth_username")},
		{Name: "auth_password", Value: "(redacted)", Source: c.Source("auth_password")},
		{Name: "session_secret", Value: "(redacted)", Source: c.Source("session_secret")},
		{Name: "auth_secret", Value: "(redacted)", Source: c.Source("auth_secret")},
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "debug", Value: strconv.FormatBool(c.Debug), Source: c.Source("debug")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-60s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-60s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-60s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
