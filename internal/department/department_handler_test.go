package department_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employee-directory/internal/department"
	departmenterrors "go-employee-directory/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	GetAllFn func(ctx context.Context) ([]department.DepartmentResponse, error)
}

func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(h *department.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	department.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{
			GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
				return []department.DepartmentResponse{{ID: "d-1", Name: "Sales"}}, nil
			},
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), "Sales")
	})

	t.Run("service error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{
			GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
				return nil, departmenterrors.ErrFetchDepartments
			},
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, "Failed to fetch the Departments", env.Error.Message)
	})
}
