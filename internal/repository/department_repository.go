package repository

import (
	"context"
	"errors"

	"github.com/lshigami/campuspulse/internal/model"
	"gorm.io/gorm"
)

type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]model.Department, error)
	FindByID(ctx context.Context, id string) (*model.Department, error)
	FindByName(ctx context.Context, name string) (*model.Department, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

// FindAll orders by name so the dashboard and the registration form agree.
func (r *departmentRepository) FindAll(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	if err := r.db.WithContext(ctx).Order("name asc").Find(&depts).Error; err != nil {
		return nil, err
	}
	return depts, nil
}

func (r *departmentRepository) FindByID(ctx context.Context, id string) (*model.Department, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *departmentRepository) FindByName(ctx context.Context, name string) (*model.Department, error) {
	return r.first(ctx, "LOWER(name) = LOWER(?)", name)
}

func (r *departmentRepository) first(ctx context.Context, query string, arg any) (*model.Department, error) {
	var dept model.Department
	if err := r.db.WithContext(ctx).Where(query, arg).First(&dept).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dept, nil
}
