package database

import (
	"log"

	"inav-panel/config"
	"inav-panel/database/model"
	"inav-panel/util/crypto"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db       *gorm.DB
	isSQLite bool
)

const (
	defaultUsername = "admin"
	defaultPassword = "admin"
)

func initModels() error {
	models := []any{
		&model.Admin{},
		&model.User{},
		&model.Room{},
		&model.NavRecord{},
		&model.Setting{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initAdmin seeds the default admin credential when the admin table is
// empty, so a fresh install can be logged into.
func initAdmin() error {
	empty, err := isTableEmpty("admin")
	if err != nil {
		log.Printf("Error checking if admin table is empty: %v", err)
		return err
	}
	if empty {
		hash, err := crypto.HashPasswordAsBcrypt(defaultPassword)
		if err != nil {
			return err
		}
		admin := &model.Admin{
			Username: defaultUsername,
			Password: hash,
		}
		return db.Create(admin).Error
	}
	return nil
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

// InitDB opens the configured database, runs migrations and seeds the
// default admin.
func InitDB(dbConfig *config.DatabaseConfig) error {
	if err := dbConfig.ValidateConfig(); err != nil {
		return err
	}
	if err := dbConfig.EnsureDirectoryExists(); err != nil {
		return err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	var err error
	isSQLite = dbConfig.IsSQLite()
	if dbConfig.IsSQLite() {
		dsn := dbConfig.GetDSN() + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
		db, err = gorm.Open(sqlite.Open(dsn), c)
	} else {
		db, err = gorm.Open(mysql.Open(dbConfig.GetDSN()), c)
	}
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	if dbConfig.IsSQLite() {
		for _, pragma := range []string{
			"PRAGMA cache_size = -64000;",
			"PRAGMA temp_store = MEMORY;",
			"PRAGMA foreign_keys = ON;",
		} {
			if _, err = sqlDB.Exec(pragma); err != nil {
				return err
			}
		}
	}

	if err := initModels(); err != nil {
		return err
	}
	return initAdmin()
}

// InitTestDB opens a throwaway SQLite database for tests.
func InitTestDB(dbPath string) error {
	return InitDB(&config.DatabaseConfig{
		Type:   config.DatabaseTypeSQLite,
		SQLite: config.SQLiteConfig{Path: dbPath},
	})
}

func CloseDB() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// Checkpoint flushes the SQLite write-ahead log. It is a no-op for other
// drivers.
func Checkpoint() error {
	if !isSQLite {
		return nil
	}
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
