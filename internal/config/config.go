package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/GlitchedDuck/Manager-hub/internal/model"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Team    TeamConfig    `yaml:"team"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // json or text
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// StorageConfig selects the persistence gateway: file, mysql, sqlite, s3 or memory.
type StorageConfig struct {
	Driver   string         `yaml:"driver"`
	DataDir  string         `yaml:"data_dir"`
	Database DatabaseConfig `yaml:"database"`
	S3       S3Config       `yaml:"s3"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	// Path is the SQLite database file.
	Path string `yaml:"path"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`
}

type AuthConfig struct {
	Enabled   bool            `yaml:"enabled"`
	JWTSecret string          `yaml:"jwt_secret"`
	TokenTTL  time.Duration   `yaml:"token_ttl"`
	Managers  []model.Manager `yaml:"managers"`
}

type TeamConfig struct {
	DefaultMembers []string `yaml:"default_members"`
	// Timezone is an IANA name, "Local" or "UTC". It decides the calendar
	// day used for overdue checks and default dates.
	Timezone string `yaml:"timezone"`
}

// Location resolves Timezone; empty means the host's local zone.
func (t TeamConfig) Location() (*time.Location, error) {
	switch t.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(t.Timezone)
		if err != nil {
			return nil, fmt.Errorf("team.timezone: %w", err)
		}
		return loc, nil
	}
}

func Default() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8501, AllowOrigins: []string{"*"}},
		Log:     LogConfig{Level: "info", Format: "json", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Storage: StorageConfig{Driver: "file", DataDir: "data", Database: DatabaseConfig{Port: 3306, Name: "manager_hub", Path: "data/hub.db"}},
		Auth:    AuthConfig{Enabled: true, JWTSecret: "manager-hub-dev-secret", TokenTTL: 7 * 24 * time.Hour},
		Team:    TeamConfig{DefaultMembers: []string{"Alice Johnson", "Bob Smith", "Carol Williams", "David Brown"}},
	}
}

// Load applies, in order: defaults, the first readable YAML file, then
// environment overrides.
func Load(configFile string) *Config {
	c := Default()

	paths := []string{"etc/config-dev.yaml", "/etc/manager-hub/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, c); err != nil {
				fmt.Fprintf(os.Stderr, "config %s: %v\n", path, err)
			}
			break
		}
	}

	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverride(&c.Log.Format, "LOG_FORMAT")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverride(&c.Storage.Driver, "HUB_STORAGE_DRIVER")
	envOverride(&c.Storage.DataDir, "HUB_DATA_DIR")
	envOverride(&c.Storage.Database.Host, "HUB_DB_HOST")
	envOverrideInt(&c.Storage.Database.Port, "HUB_DB_PORT")
	envOverride(&c.Storage.Database.User, "HUB_DB_USER")
	envOverride(&c.Storage.Database.Password, "HUB_DB_PASS")
	envOverride(&c.Storage.Database.Name, "HUB_DB_NAME")
	envOverride(&c.Storage.Database.Path, "HUB_DB_PATH")
	envOverride(&c.Storage.S3.Bucket, "HUB_S3_BUCKET")
	envOverride(&c.Storage.S3.Region, "HUB_S3_REGION")
	envOverride(&c.Storage.S3.Endpoint, "HUB_S3_ENDPOINT")
	envOverride(&c.Storage.S3.Prefix, "HUB_S3_PREFIX")
	envOverrideBool(&c.Storage.S3.PathStyle, "HUB_S3_PATH_STYLE")
	envOverride(&c.Auth.JWTSecret, "HUB_JWT_SECRET")
	envOverrideBool(&c.Auth.Enabled, "HUB_AUTH_ENABLED")
	envOverride(&c.Team.Timezone, "HUB_TIMEZONE")
	if v := os.Getenv("HUB_TEAM"); v != "" {
		c.Team.DefaultMembers = splitAndTrim(v)
	}

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
