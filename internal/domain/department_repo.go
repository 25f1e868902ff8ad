package domain

import "context"

type Department struct {
	ID   int64
	Name string
}

type DepartmentRepo interface {
	GetAllDepartments(ctx context.Context) ([]Department, error)
	AddDepartment(ctx context.Context, name string) (int64, error)
}
