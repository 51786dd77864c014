package config

import (
	"fmt"
	"time"

	"github.com/DaryllGomas/bigpic-technology/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 初始化数据库连接
func InitDB(config Config) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	// 设置连接池
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// sqlite 单文件，限制并发写连接
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 自动迁移表结构
	err = migrateDB()
	if err != nil {
		return fmt.Errorf("数据库迁移失败: %v", err)
	}

	return nil
}

// migrateDB 进行数据库表结构迁移
func migrateDB() error {
	// 自动迁移所有表
	err := DB.AutoMigrate(
		&models.Client{},
		&models.Job{},
		&models.Lead{},
		&models.DailyScore{},
	)
	if err != nil {
		return fmt.Errorf("数据库迁移失败: %v", err)
	}

	return nil
}
