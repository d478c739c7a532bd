package job

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Job, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).
		Order("title ASC").
		Find(&jobs).Error
	return jobs, err
}
