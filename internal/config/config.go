package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Appwrite AppwriteConfig `yaml:"appwrite"`
	Server   ServerConfig   `yaml:"server"`
	// Session is the stored session secret from the last login; empty when
	// logged out.
	Session string `yaml:"session,omitempty"`
}

type AppwriteConfig struct {
	Endpoint    string      `yaml:"endpoint"`
	ProjectID   string      `yaml:"project_id"`
	APIKey      string      `yaml:"api_key,omitempty"`
	DatabaseID  string      `yaml:"database_id"`
	BucketID    string      `yaml:"bucket_id"`
	Collections Collections `yaml:"collections"`
}

// Collections maps each content type to its remote collection ID.
type Collections struct {
	PersonalInfo string `yaml:"personal_info"`
	Experiences  string `yaml:"experiences"`
	Projects     string `yaml:"projects"`
	Skills       string `yaml:"skills"`
	Certificates string `yaml:"certificates"`
	Messages     string `yaml:"messages"`
}

type ServerConfig struct {
	Port   int    `yaml:"port"`
	DBPath string `yaml:"db_path"`
	// RefreshEvery is the cron expression for reloading the content cache while
	// serving, e.g. "@every 5m".
	RefreshEvery string `yaml:"refresh_every"`
}

// Load reads config.yaml from dataDir, then applies .env / environment
// overrides and defaults. A missing file yields a zero config.
func Load(dataDir string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	path := filepath.Join(dataDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("APPWRITE_ENDPOINT"); v != "" {
		cfg.Appwrite.Endpoint = v
	}
	if v := os.Getenv("APPWRITE_PROJECT_ID"); v != "" {
		cfg.Appwrite.ProjectID = v
	}
	if v := os.Getenv("APPWRITE_API_KEY"); v != "" {
		cfg.Appwrite.APIKey = v
	}
	if v := os.Getenv("APPWRITE_DATABASE_ID"); v != "" {
		cfg.Appwrite.DatabaseID = v
	}
	if v := os.Getenv("APPWRITE_BUCKET_ID"); v != "" {
		cfg.Appwrite.BucketID = v
	}
	if v := os.Getenv("FOLIO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FOLIO_DB_PATH"); v != "" {
		cfg.Server.DBPath = v
	}
}

func applyDefaults(cfg *Config) {
	c := &cfg.Appwrite.Collections
	if c.PersonalInfo == "" {
		c.PersonalInfo = "personal_info"
	}
	if c.Experiences == "" {
		c.Experiences = "experiences"
	}
	if c.Projects == "" {
		c.Projects = "projects"
	}
	if c.Skills == "" {
		c.Skills = "skills"
	}
	if c.Certificates == "" {
		c.Certificates = "certificates"
	}
	if c.Messages == "" {
		c.Messages = "contacts"
	}
	if cfg.Appwrite.DatabaseID == "" {
		cfg.Appwrite.DatabaseID = "portfolio"
	}
	if cfg.Appwrite.BucketID == "" {
		cfg.Appwrite.BucketID = "portfolio-images"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.DBPath == "" {
		cfg.Server.DBPath = "folio.db"
	}
	if cfg.Server.RefreshEvery == "" {
		cfg.Server.RefreshEvery = "@every 5m"
	}
}

// Validate checks the fields every remote operation needs.
func (c *Config) Validate() error {
	if c.Appwrite.Endpoint == "" {
		return fmt.Errorf("appwrite endpoint is required (set APPWRITE_ENDPOINT or appwrite.endpoint)")
	}
	if c.Appwrite.ProjectID == "" {
		return fmt.Errorf("appwrite project ID is required (set APPWRITE_PROJECT_ID or appwrite.project_id)")
	}
	return nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(filepath.Join(dataDir, "config.yaml"), data, 0600)
}
