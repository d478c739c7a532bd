package office_test

import (
	"context"
	"errors"
	"testing"

	"go-employee-directory/internal/office"
	officeerrors "go-employee-directory/internal/office/errors"
	officeMock "go-employee-directory/internal/office/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestOfficeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := officeMock.NewMockRepository(ctrl)
	svc := office.NewService(repo, zap.NewNop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().
			FindAll(ctx).
			Return([]office.Office{{ID: id, Name: "Berlin"}}, nil).
			Times(1)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []office.OfficeResponse{{ID: id.String(), Name: "Berlin"}}, resp)
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		repo.EXPECT().FindAll(ctx).Return(nil, nil)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("repository error is folded", func(t *testing.T) {
		repo.EXPECT().FindAll(ctx).Return(nil, errors.New("dial tcp: connection refused"))

		resp, err := svc.GetAll(ctx)

		assert.ErrorIs(t, err, officeerrors.ErrFetchOffices)
		assert.NotContains(t, err.Error(), "dial tcp")
		assert.Nil(t, resp)
	})
}
