package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Pagination PaginationConfig `mapstructure:"pagination"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	Log        LogConfig        `mapstructure:"log"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
	ForceSeed    bool `mapstructure:"-"`

	// 配置文件所在目录，用于热加载
	Dir string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
	SSLMode   string `mapstructure:"sslmode"`
	Path      string
	Seed      bool
}

type PaginationConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
	ServiceName       string `mapstructure:"service_name"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const DefaultPageSize = 10

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "trivia.db")

	v.SetDefault("pagination.page_size", DefaultPageSize)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("tracing.service_name", "trivia-api")
	v.SetDefault("log.file", "logs/app.log")
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Dir = path
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode %q", c.Server.Mode)
	}

	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Pagination.PageSize <= 0 {
		return fmt.Errorf("pagination.page_size must be positive, got %d", c.Pagination.PageSize)
	}

	if c.Tracing.Enabled && c.Tracing.CollectorEndpoint == "" {
		return fmt.Errorf("tracing is enabled but tracing.collector_endpoint is empty")
	}

	return nil
}
