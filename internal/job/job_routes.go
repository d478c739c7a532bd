package job

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.GetAll)
	}
}
