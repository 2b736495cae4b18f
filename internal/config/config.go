package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string `env:"PORT, default=8080"`
	GinMode         string `env:"GIN_MODE, default=debug"`
	LogLevel        string `env:"LOG_LEVEL, default=info"`
	LogPretty       bool   `env:"LOG_PRETTY, default=false"`
	HomeRecentTasks int    `env:"HOME_RECENT_TASKS, default=5"`
	SeedPassword    string `env:"SEED_PASSWORD, default=pharmacy-demo"`

	DB DBConfig
}

type DBConfig struct {
	Driver     string `env:"DB_DRIVER, default=sqlite"`
	Host       string `env:"DB_HOST, default=localhost"`
	Port       string `env:"DB_PORT"`
	User       string `env:"DB_USER, default=taskuser"`
	Password   string `env:"DB_PASSWORD, default=taskpassword"`
	Name       string `env:"DB_NAME, default=pharmacy_tasks"`
	SQLitePath string `env:"DB_SQLITE_PATH, default=pharmacy_tasks.db"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	return LoadWith(context.Background(), ".env", nil)
}

// LoadWith is Load with an explicit dotenv path and lookuper, used by tests.
// A nil lookuper reads the process environment.
func LoadWith(ctx context.Context, dotenvPath string, lookuper envconfig.Lookuper) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to read %s: %w", dotenvPath, err)
		}
	}

	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	if cfg.DB.Port == "" {
		cfg.DB.Port = defaultPort(cfg.DB.Driver)
	}

	return &cfg, nil
}

func defaultPort(driver string) string {
	switch driver {
	case "postgres":
		return "5432"
	case "mysql":
		return "3306"
	default:
		return ""
	}
}
