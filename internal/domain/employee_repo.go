package domain

import (
	"context"

	"employee-tracker/internal/model"
)

type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID *int64
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type NewEmployee struct {
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID *int64
}

type EmployeeRepo interface {
	GetAllEmployees(ctx context.Context) ([]Employee, error)
	GetEmployeeRows(ctx context.Context) ([]model.EmployeeRow, error)
	AddEmployee(ctx context.Context, e NewEmployee) (int64, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error
}
