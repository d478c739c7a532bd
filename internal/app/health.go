package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-employee-directory/internal/shared/apperror"
	"go-employee-directory/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type healthStatus struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// healthHandler reports 503 when the database is unreachable. A failing cache
// only degrades the report since the directory works without it.
func healthHandler(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		status := healthStatus{Database: "up", Cache: "disabled"}

		if err := db.PingContext(ctx); err != nil {
			zap.L().Warn("health check: database unreachable", zap.Error(err))
			response.Error(c, http.StatusServiceUnavailable,
				apperror.CodeServiceUnavailable, "Database unreachable", nil)
			return
		}

		if rdb != nil {
			status.Cache = "up"
			if err := rdb.Ping(ctx).Err(); err != nil {
				zap.L().Warn("health check: cache unreachable", zap.Error(err))
				status.Cache = "down"
			}
		}

		response.Success(c, http.StatusOK, status, nil)
	}
}
