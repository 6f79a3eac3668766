package repository

import (
	"context"
	"errors"

	"github.com/atriumhq/atrium/internal/department/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, department *domain.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Department, error) {
	var department domain.Department
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&department).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *repo) All(ctx context.Context) ([]*domain.Department, error) {
	var departments []*domain.Department
	err := r.db.WithContext(ctx).Order("name asc").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).Count(&count).Error
	return count, err
}

func (r *repo) UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Department{}).Error
}
