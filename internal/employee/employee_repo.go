package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindPage(ctx context.Context, filter Filter, limit, offset int) ([]Employee, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindPage reads one page in a single query, newest employees first.
func (r *repository) FindPage(ctx context.Context, filter Filter, limit, offset int) ([]Employee, error) {
	employees := make([]Employee, 0, limit)
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(filter.Scope()).
		Joins("LineManager").
		Order("employees.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) Count(ctx context.Context, filter Filter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(filter.Scope()).
		Count(&total).Error
	return total, err
}
