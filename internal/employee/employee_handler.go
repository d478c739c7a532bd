package employee

import (
	"net/http"

	"go-employee-directory/internal/shared/apperror"
	"go-employee-directory/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// bindFilter reads the shared query parameters. It writes the error response
// itself and reports false when the request cannot be served.
func (h *Handler) bindFilter(c *gin.Context) (Filter, int, bool) {
	var q ListEmployeesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http employee query validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return Filter{}, 0, false
	}

	filter, err := NewFilter(q.Query, q.Status, q.Job, q.Office)
	if err != nil {
		h.writeServiceError(c, err)
		return Filter{}, 0, false
	}

	if q.Page < 1 {
		q.Page = 1
	}
	return filter, q.Page, true
}

// List serves one directory page with its pagination meta.
func (h *Handler) List(c *gin.Context) {
	filter, page, ok := h.bindFilter(c)
	if !ok {
		return
	}
	h.logger.Debug("http list employees", zap.Int("page", page))

	resp, err := h.service.SearchEmployees(c.Request.Context(), filter, page)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(resp.Total, resp.Page, resp.PageSize)
	response.Success(c, http.StatusOK, resp.Items, &meta)
}

func (h *Handler) Count(c *gin.Context) {
	filter, _, ok := h.bindFilter(c)
	if !ok {
		return
	}

	total, err := h.service.CountEmployees(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pageSize := h.service.PageSize()
	response.Success(c, http.StatusOK, EmployeeCountResponse{
		Count:      total,
		TotalPages: response.TotalPages(total, pageSize),
		PageSize:   pageSize,
	}, nil)
}

func (h *Handler) FilterOptions(c *gin.Context) {
	resp, err := h.service.GetFilterOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
