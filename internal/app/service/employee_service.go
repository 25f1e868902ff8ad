package service

import (
	"context"
	"fmt"

	"employee-tracker/internal/domain"
	"employee-tracker/internal/model"
)

type EmployeeService struct {
	Repo domain.EmployeeRepo
}

func NewEmployeeService(repo domain.EmployeeRepo) *EmployeeService {
	return &EmployeeService{Repo: repo}
}

func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.Repo.GetAllEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) GetEmployeeRows(ctx context.Context) ([]model.EmployeeRow, error) {
	rows, err := s.Repo.GetEmployeeRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("view employees: %w", err)
	}
	return rows, nil
}

func (s *EmployeeService) AddEmployee(ctx context.Context, e domain.NewEmployee) (int64, error) {
	id, err := s.Repo.AddEmployee(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("add employee %s %s: %w", e.FirstName, e.LastName, err)
	}
	return id, nil
}

func (s *EmployeeService) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	if err := s.Repo.UpdateEmployeeRole(ctx, employeeID, roleID); err != nil {
		return fmt.Errorf("update role of employee %d: %w", employeeID, err)
	}
	return nil
}
