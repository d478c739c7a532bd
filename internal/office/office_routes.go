package office

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	offices := r.Group("/offices")
	{
		offices.GET("", h.GetAll)
	}
}
