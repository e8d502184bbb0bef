package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Values come from an optional
// YAML file; environment variables win over the file so deployments can keep
// secrets out of it.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Gmail    GmailConfig    `yaml:"gmail"`
	LLM      LLMConfig      `yaml:"llm"`
	App      AppConfig      `yaml:"app"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// SupabaseConfig points at the hosted identity provider. Only auth is used;
// data lives in postgres.
type SupabaseConfig struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

type GmailConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	TokenFile       string `yaml:"token_file"`
	Sender          string `yaml:"sender"`
}

type LLMConfig struct {
	Model string `yaml:"model"`
}

// AppConfig carries values interpolated into notification emails.
type AppConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Load reads the config file at path (missing file is fine) and applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Gmail: GmailConfig{
			CredentialsFile: "credentials.json",
			TokenFile:       "token.json",
		},
		LLM: LLMConfig{Model: "gemini-2.5-flash"},
		App: AppConfig{BaseURL: "http://localhost:3000"},
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	overrideString(&cfg.Database.DSN, "DATABASE_DSN")
	overrideString(&cfg.Supabase.URL, "SUPABASE_URL")
	overrideString(&cfg.Supabase.Key, "SUPABASE_KEY")
	overrideString(&cfg.Gmail.CredentialsFile, "GMAIL_CREDENTIALS_FILE")
	overrideString(&cfg.Gmail.TokenFile, "GMAIL_TOKEN_FILE")
	overrideString(&cfg.Gmail.Sender, "GMAIL_SENDER")
	overrideString(&cfg.LLM.Model, "LLM_MODEL")
	overrideString(&cfg.App.BaseURL, "APP_BASE_URL")

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = dsnFromParts()
	}
	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// dsnFromParts assembles a libpq DSN from the discrete DB_* variables, the
// way local development env files tend to be written.
func dsnFromParts() string {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	pass := envOr("DB_PASSWORD", "")
	name := envOr("DB_NAME", "solosuite")
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
