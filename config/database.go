package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DatabaseType represents the type of database
type DatabaseType string

const (
	DatabaseTypeSQLite DatabaseType = "sqlite"
	DatabaseTypeMySQL  DatabaseType = "mysql"
)

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Type   DatabaseType `json:"type"`
	SQLite SQLiteConfig `json:"sqlite"`
	MySQL  MySQLConfig  `json:"mysql"`
}

// SQLiteConfig holds SQLite specific configuration
type SQLiteConfig struct {
	Path string `json:"path"`
}

// MySQLConfig holds MySQL specific configuration
type MySQLConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// GetDSN returns the data source name for the database
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case DatabaseTypeMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.MySQL.Username,
			c.MySQL.Password,
			c.MySQL.Host,
			c.MySQL.Port,
			c.MySQL.Database,
		)
	default:
		return c.SQLite.Path
	}
}

// GetDatabaseConfig builds the database configuration from the environment,
// falling back to a local SQLite file.
func GetDatabaseConfig() *DatabaseConfig {
	cfg := &DatabaseConfig{
		Type: DatabaseTypeSQLite,
		SQLite: SQLiteConfig{
			Path: GetDBPath(),
		},
		MySQL: MySQLConfig{
			Host:     "127.0.0.1",
			Port:     3306,
			Database: "indoor_navigation",
			Username: "root",
		},
	}

	if os.Getenv("INAV_DB_TYPE") == string(DatabaseTypeMySQL) {
		cfg.Type = DatabaseTypeMySQL
	}
	if host := os.Getenv("INAV_MYSQL_HOST"); host != "" {
		cfg.MySQL.Host = host
	}
	if port, err := strconv.Atoi(os.Getenv("INAV_MYSQL_PORT")); err == nil {
		cfg.MySQL.Port = port
	}
	if name := os.Getenv("INAV_MYSQL_DATABASE"); name != "" {
		cfg.MySQL.Database = name
	}
	if user := os.Getenv("INAV_MYSQL_USER"); user != "" {
		cfg.MySQL.Username = user
	}
	if pass := os.Getenv("INAV_MYSQL_PASSWORD"); pass != "" {
		cfg.MySQL.Password = pass
	}

	return cfg
}

// ValidateConfig validates the database configuration
func (c *DatabaseConfig) ValidateConfig() error {
	switch c.Type {
	case DatabaseTypeSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLite path cannot be empty")
		}
	case DatabaseTypeMySQL:
		if c.MySQL.Host == "" {
			return fmt.Errorf("MySQL host cannot be empty")
		}
		if c.MySQL.Database == "" {
			return fmt.Errorf("MySQL database name cannot be empty")
		}
		if c.MySQL.Username == "" {
			return fmt.Errorf("MySQL username cannot be empty")
		}
		if c.MySQL.Port <= 0 || c.MySQL.Port > 65535 {
			return fmt.Errorf("MySQL port must be between 1 and 65535")
		}
	default:
		return fmt.Errorf("unsupported database type: %s", c.Type)
	}
	return nil
}

// IsSQLite returns true if the database type is SQLite
func (c *DatabaseConfig) IsSQLite() bool {
	return c.Type == DatabaseTypeSQLite
}

// EnsureDirectoryExists ensures the directory for SQLite database exists
func (c *DatabaseConfig) EnsureDirectoryExists() error {
	if c.Type == DatabaseTypeSQLite {
		dir := filepath.Dir(c.SQLite.Path)
		return os.MkdirAll(dir, 0o750)
	}
	return nil
}
