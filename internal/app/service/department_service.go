package service

import (
	"context"
	"fmt"

	"employee-tracker/internal/domain"
)

type DepartmentService struct {
	Repo domain.DepartmentRepo
}

func NewDepartmentService(repo domain.DepartmentRepo) *DepartmentService {
	return &DepartmentService{Repo: repo}
}

func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.Repo.GetAllDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

func (s *DepartmentService) AddDepartment(ctx context.Context, name string) (int64, error) {
	id, err := s.Repo.AddDepartment(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("add department %q: %w", name, err)
	}
	return id, nil
}
