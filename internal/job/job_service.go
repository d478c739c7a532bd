package job

import (
	"context"

	joberrors "go-employee-directory/internal/job/errors"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]JobResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]JobResponse, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all jobs failed", zap.Error(err))
		return nil, joberrors.ErrFetchJobs
	}

	return mapToListResponse(jobs), nil
}

func mapToResponse(j Job) JobResponse {
	return JobResponse{
		ID:    j.ID.String(),
		Title: j.Title,
	}
}

func mapToListResponse(jobs []Job) []JobResponse {
	res := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = mapToResponse(j)
	}
	return res
}
