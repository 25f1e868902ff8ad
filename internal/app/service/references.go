package service

import (
	"context"

	"employee-tracker/internal/domain"
)

// References is the reference data behind the role and employee choice lists.
type References struct {
	Roles     []domain.Role
	Employees []domain.Employee
}

// LoadReferences fetches roles and employees. The two reads do not depend on
// each other, so they go through the pool together.
func (a *AsyncService) LoadReferences(ctx context.Context, roles *RoleService, employees *EmployeeService) (References, error) {
	values, err := a.Gather(ctx,
		func(ctx context.Context) (any, error) { return roles.GetAllRoles(ctx) },
		func(ctx context.Context) (any, error) { return employees.GetAllEmployees(ctx) },
	)
	if err != nil {
		return References{}, err
	}
	return References{
		Roles:     values[0].([]domain.Role),
		Employees: values[1].([]domain.Employee),
	}, nil
}
