package flows

import (
	"context"

	"employee-tracker/internal/delivery/cli/render"
	"employee-tracker/internal/delivery/cli/router"
)

func viewEmployees(env Env) router.HandlerFunc {
	return func(ctx context.Context) error {
		rows, err := env.Employees.GetEmployeeRows(ctx)
		if err != nil {
			return err
		}
		render.Employees(env.Out, rows)
		return nil
	}
}

func viewDepartments(env Env) router.HandlerFunc {
	return func(ctx context.Context) error {
		departments, err := env.Departments.GetAllDepartments(ctx)
		if err != nil {
			return err
		}
		render.Departments(env.Out, departments)
		return nil
	}
}

func viewRoles(env Env) router.HandlerFunc {
	return func(ctx context.Context) error {
		rows, err := env.Roles.GetRoleRows(ctx)
		if err != nil {
			return err
		}
		render.Roles(env.Out, rows)
		return nil
	}
}
