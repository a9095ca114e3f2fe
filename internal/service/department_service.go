package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/repository"
	"github.com/lshigami/campuspulse/internal/scoring"
)

type DepartmentService interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
}

type departmentService struct {
	repo repository.DepartmentRepository
}

func NewDepartmentService(repo repository.DepartmentRepository) DepartmentService {
	return &departmentService{repo: repo}
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, scoring.DataAccess("list departments", err)
	}
	resp := []dto.DepartmentResponse{}
	copier.Copy(&resp, &depts)
	return resp, nil
}
