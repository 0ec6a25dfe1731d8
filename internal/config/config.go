package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsHost string `toml:"metrics_host"`
	MetricsPort string `toml:"metrics_port"`
	// allowed CORS origins besides localhost
	AllowedOrigins []string `toml:"allowed_origins"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// store
	StoreDriver    string `toml:"store_driver"`
	SQLitePath     string `toml:"sqlite_path"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis, for the per-key lock shared by processes on one postgres store
	RedisHost    string        `toml:"redis_host"`
	RedisPort    string        `toml:"redis_port"`
	LockTTL      time.Duration `toml:"lock_ttl"`
	UseRedisLock bool          `toml:"use_redis_lock"`
	// stats
	StatsCacheSizeMB int `toml:"stats_cache_size_mb"`
	LookbackDays     int `toml:"lookback_days"`
	// how often the ramadan end date is checked
	ModeSwitchInterval time.Duration `toml:"mode_switch_interval"`
	// how often the store is checked for writes made by other processes
	ChangePollInterval time.Duration `toml:"change_poll_interval"`
	// backups
	BackupDir         string `toml:"backup_dir"`
	DriveBackupFolder string `toml:"drive_backup_folder"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML section for env from path, fills in defaults and
// loads a .env file next to the binary into the environment, if present.
func Load(env, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to load .env file: %s", err)
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config %s has no section for env %s", path, env)
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.Port == 0 {
		c.Port = 9300
	}
	if c.MetricsHost == "" {
		c.MetricsHost = "127.0.0.1"
	}
	if c.MetricsPort == "" {
		c.MetricsPort = "9301"
	}
	if c.StoreDriver == "" {
		c.StoreDriver = StoreSQLite
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "./fittrack.db"
	}
	if c.LockTTL == 0 {
		c.LockTTL = 5 * time.Second
	}
	if c.StatsCacheSizeMB == 0 {
		c.StatsCacheSizeMB = 1
	}
	if c.LookbackDays == 0 {
		c.LookbackDays = 28
	}
	if c.ModeSwitchInterval == 0 {
		c.ModeSwitchInterval = time.Hour
	}
	if c.ChangePollInterval == 0 {
		c.ChangePollInterval = 2 * time.Second
	}
	if c.BackupDir == "" {
		c.BackupDir = "."
	}
	if c.DriveBackupFolder == "" {
		c.DriveBackupFolder = "fittrack-backup"
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreSQLite, StoreMemory:
	case StorePostgres:
		if c.PostgresHost == "" || c.PostgresDBName == "" {
			return errors.New("postgres store needs postgres_host and postgres_db_name")
		}
	default:
		return fmt.Errorf("unknown store driver %q, use sqlite, postgres or memory", c.StoreDriver)
	}
	if c.UseRedisLock && c.RedisHost == "" {
		return errors.New("use_redis_lock needs redis_host")
	}
	if c.LookbackDays < 0 || c.LookbackDays > 366 {
		return errors.New("lookback_days must be between 0 and 366")
	}
	if c.ChangePollInterval < 0 {
		return errors.New("change_poll_interval must not be negative")
	}
	return nil
}

// Env returns the value of an environment variable, logging when it is unset.
func Env(name string) string {
	v := os.Getenv(name)
	if v == "" {
		log.Debugf("env var %s not set", name)
	}
	return v
}
