package department

import (
	"context"

	departmenterrors "go-employee-directory/internal/department/errors"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, departmenterrors.ErrFetchDepartments
	}

	return mapToListResponse(depts), nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   dept.ID.String(),
		Name: dept.Name,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
