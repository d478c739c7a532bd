package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employee-directory/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"empty", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"round up", 21, 10, 3},
		{"less than a page", 3, 10, 1},
		{"zero page size", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := response.NewPaginationMeta(tt.total, 1, tt.pageSize)
			assert.Equal(t, tt.want, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

func TestError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch the Employees", nil)

	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Nil(t, env.Data)
	if assert.NotNil(t, env.Error) {
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Equal(t, "Failed to fetch the Employees", env.Error.Message)
	}
}
