package config

import (
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

type Config struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	MaxOpenConns int
	LogLevel     string
}

// LoadConfig reads the database settings from the environment. A .env file in
// the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_MAX_OPEN_CONNS", 2)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Driver:       v.GetString("DB_DRIVER"),
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetString("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASS"),
		Name:         v.GetString("DB_NAME"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		LogLevel:     v.GetString("LOG_LEVEL"),
	}
	if cfg.Driver != DriverMySQL && cfg.Driver != DriverSQLite {
		return nil, ErrUnsupportedDriver{Driver: cfg.Driver}
	}
	if cfg.Name == "" {
		return nil, ErrMissingEnv{Key: "DB_NAME"}
	}
	if cfg.MaxOpenConns < 1 {
		cfg.MaxOpenConns = 1
	}
	return cfg, nil
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on", c.Name)
	}
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = c.Name
	mc.ParseTime = true
	return mc.FormatDSN()
}

type ErrMissingEnv struct {
	Key string
}

func (e ErrMissingEnv) Error() string {
	return e.Key + " is not set in the environment"
}

type ErrUnsupportedDriver struct {
	Driver string
}

func (e ErrUnsupportedDriver) Error() string {
	return fmt.Sprintf("unsupported DB_DRIVER %q (want %s or %s)", e.Driver, DriverMySQL, DriverSQLite)
}
