package app

import (
	"go-employee-directory/internal/config"
	"go-employee-directory/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	connectDB    = connection.ConnectGORMWithRetry
	connectRedis = connection.ConnectRedisWithRetry
)

// ConnectStores opens the database pool and, when configured, Redis. On
// failure nothing stays open. The returned cleanup closes both.
func ConnectStores(cfg config.Config, logger *zap.Logger) (*gorm.DB, *redis.Client, func(), error) {
	gormDB, err := connectDB(cfg.DB, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	redisClient, err := connectRedis(cfg.Redis, logger)
	if err != nil {
		closeDB(gormDB, logger)
		return nil, nil, nil, err
	}

	cleanup := func() {
		closeDB(gormDB, logger)
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Warn("close redis failed", zap.Error(err))
			}
		}
	}

	return gormDB, redisClient, cleanup, nil
}

func closeDB(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("close database failed", zap.Error(err))
	}
}

// BuildApp connects the stores and registers every module on router. The
// returned cleanup closes the connections and is safe to call once.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	gormDB, redisClient, cleanup, err := ConnectStores(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := registerModules(router, cfg, gormDB, redisClient, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}
