package repository

import (
	"context"
	"errors"

	"github.com/atriumhq/atrium/internal/employee/domain"
	"github.com/atriumhq/atrium/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, employee *domain.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *repo) List(ctx context.Context, filter domain.ListEmployeeFilter, page pagination.Pagination) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	stmt := r.db.WithContext(ctx).Model(&domain.Employee{})
	if filter.Department != "" {
		stmt = stmt.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.Name != "" {
		stmt = stmt.Where("lower(name) LIKE lower(?)", "%"+filter.Name+"%")
	}
	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}
	if page.PageSize > 0 {
		stmt = stmt.Limit(page.PageSize + 1)
	}
	err := stmt.Order("created_at desc, id desc").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repo) All(ctx context.Context) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	err := r.db.WithContext(ctx).Order("name asc").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

func (r *repo) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("department = ?", department).
		Count(&count).Error
	return count, err
}

func (r *repo) UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Employee{}).Error
}
