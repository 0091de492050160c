package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "SUPERSTAR"

	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	HTTP    HTTP    `mapstructure:"http"`
	Log     Log     `mapstructure:"log"`
	Storage Storage `mapstructure:"storage"`
	Metrics Metrics `mapstructure:"metrics"`
	Swagger Swagger `mapstructure:"swagger"`
}

type HTTP struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Storage слот, в котором лежит коллекция заказов
type Storage struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	Key    string `mapstructure:"key"`
}

type Metrics struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

type Swagger struct {
	Enabled bool `mapstructure:"enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":9091")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", "data/superstar.db")
	v.SetDefault("storage.key", "superstar-orders")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "superstar")
	v.SetDefault("swagger.enabled", true)
}

// Load reads defaults, then config.yaml (path or ./, /etc/superstar), then .env and SUPERSTAR_* variables.
// A missing config file or .env is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/superstar")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return errors.New("config: storage.path is required for sqlite")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return errors.New("config: storage.key is empty")
	}
	if c.HTTP.Addr == "" {
		return errors.New("config: http.addr is empty")
	}
	return nil
}
