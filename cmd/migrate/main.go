package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ContactBook/pkg/logger"
	"ContactBook/storage/database"
)

// 建表在服务进程之外完成，服务启动时假定 contacts 表已就绪
func main() {
	logger.Init()
	defer logger.Sync()

	db, err := database.Open()
	if err != nil {
		logger.Logger.Fatal("Failed to open database", zap.Error(err))
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := database.Close(ctx, db); err != nil {
			logger.Logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		logger.Logger.Fatal("Migration failed", zap.Error(err))
	}
}
