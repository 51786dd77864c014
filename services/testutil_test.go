package services

import (
	"testing"

	"github.com/DaryllGomas/bigpic-technology/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB 打开内存sqlite并迁移表结构
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库绑定单连接，避免连接池拿到不同的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Job{},
		&models.Lead{},
		&models.DailyScore{},
	))
	return db
}

// seedClient 插入一个测试客户
func seedClient(t *testing.T, db *gorm.DB, name string, rate float64) *models.Client {
	t.Helper()
	client := models.Client{Name: name, HourlyRate: rate}
	require.NoError(t, db.Create(&client).Error)
	return &client
}
