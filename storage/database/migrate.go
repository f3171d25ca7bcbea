package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ContactBook/internal/model"
	"ContactBook/pkg/logger"
)

// Migrate 建表，由 cmd/migrate 在服务启动前运行，不属于服务进程
func Migrate(db *gorm.DB) error {
	if db == nil {
		return gorm.ErrInvalidDB
	}

	logger.Logger.Info("Starting database migration...")

	if err := db.AutoMigrate(&model.Contact{}); err != nil {
		logger.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}

	logger.Logger.Info("Database migration completed successfully")
	return nil
}
