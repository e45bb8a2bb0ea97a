package database

import (
	"fmt"
	"log"
	"trivia_backend/internal/config"
	"trivia_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultCategories 初始分类，仅在分类表为空时写入
var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// InitDB 建立连接，按需执行迁移和初始数据写入
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if cfg.ForceMigrate || cfg.Server.Mode != "release" {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	if cfg.Database.Seed || cfg.ForceSeed {
		if err := Seed(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func Open(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	// 内存 sqlite 每个连接都是独立的库，只能用一个连接
	if cfg.Driver == config.DriverSQLite && cfg.Path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Question{},
	)
}

// Seed 写入默认分类
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := make([]model.Category, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories = append(categories, model.Category{Type: name})
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d default categories", len(categories))
	return nil
}
