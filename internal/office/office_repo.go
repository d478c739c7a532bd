package office

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=office_repo.go -destination=mock/office_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Office, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Office, error) {
	var offices []Office
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&offices).Error
	return offices, err
}
