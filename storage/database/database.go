package database

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ContactBook/config"
	"ContactBook/pkg/logger"
)

// Open 建立数据库连接并返回显式句柄。
// 句柄由调用方持有并传递，生命周期为 Open -> (使用) -> Close，
// 不设包级单例。
func Open() (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		// 唯一约束冲突翻译为 gorm.ErrDuplicatedKey，store 层依赖这一点
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(config.Cfg.GetDSN()), gormCfg)
	if err != nil {
		logger.Logger.Error("Failed to open database", zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Error("Failed to get sql.DB from gorm", zap.Error(err))
		return nil, err
	}

	configureConnectionPool(sqlDB)

	if err := sqlDB.Ping(); err != nil {
		logger.Logger.Error("Failed to ping database", zap.Error(err))
		return nil, err
	}

	logger.Logger.Info("Database connection established",
		zap.String("host", config.Cfg.PostgreSQLHost),
		zap.String("database", config.Cfg.PostgreSQLDatabase),
	)
	return db, nil
}

// Close 关闭句柄，受 ctx 超时约束
func Close(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- sqlDB.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func configureConnectionPool(sqlDB *sql.DB) {
	cfg := config.Cfg

	sqlDB.SetMaxIdleConns(cfg.PostgreSQLMaxIdle)
	sqlDB.SetMaxOpenConns(cfg.PostgreSQLMaxOpen)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)
}
