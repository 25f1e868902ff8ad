package domain

import (
	"context"

	"employee-tracker/internal/model"
)

type Role struct {
	ID           int64
	Title        string
	Salary       float64
	DepartmentID int64
}

// NewRole carries the salary exactly as the operator typed it; the schema
// decides whether it is a number.
type NewRole struct {
	Title        string
	Salary       string
	DepartmentID int64
}

type RoleRepo interface {
	GetAllRoles(ctx context.Context) ([]Role, error)
	GetRoleRows(ctx context.Context) ([]model.RoleRow, error)
	AddRole(ctx context.Context, r NewRole) (int64, error)
}
