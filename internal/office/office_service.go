package office

import (
	"context"

	officeerrors "go-employee-directory/internal/office/errors"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]OfficeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("office.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("office.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]OfficeResponse, error) {
	offices, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all offices failed", zap.Error(err))
		return nil, officeerrors.ErrFetchOffices
	}

	return mapToListResponse(offices), nil
}

func mapToResponse(office Office) OfficeResponse {
	return OfficeResponse{
		ID:   office.ID.String(),
		Name: office.Name,
	}
}

func mapToListResponse(offices []Office) []OfficeResponse {
	res := make([]OfficeResponse, len(offices))
	for i, d := range offices {
		res[i] = mapToResponse(d)
	}
	return res
}
