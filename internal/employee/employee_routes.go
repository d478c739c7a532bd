package employee

import (
	"go-employee-directory/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.List)
		employees.GET("/count", handler.Count)
		employees.GET("/filters", handler.FilterOptions)
	}
}
