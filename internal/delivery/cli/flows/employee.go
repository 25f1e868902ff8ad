package flows

import (
	"context"
	"fmt"

	"employee-tracker/internal/delivery/cli/choices"
	"employee-tracker/internal/delivery/cli/router"
	"employee-tracker/internal/domain"
)

func addEmployee(env Env) router.HandlerFunc {
	return func(ctx context.Context) error {
		refs, err := env.Async.LoadReferences(ctx, env.Roles, env.Employees)
		if err != nil {
			return err
		}

		first, err := env.Prompt.Input("What is the employee's first name?")
		if err != nil {
			return err
		}
		last, err := env.Prompt.Input("What is the employee's last name?")
		if err != nil {
			return err
		}
		role, err := env.Prompt.Select("What is the employee's role?", choices.Roles(refs.Roles))
		if err != nil {
			return err
		}
		manager, err := env.Prompt.Select("Who is the employee's manager?", choices.Managers(refs.Employees))
		if err != nil {
			return err
		}

		_, err = env.Employees.AddEmployee(ctx, domain.NewEmployee{
			FirstName: first,
			LastName:  last,
			RoleID:    *role.ID,
			ManagerID: manager.ID,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, "Added employee to the database")
		return nil
	}
}

func updateEmployeeRole(env Env) router.HandlerFunc {
	return func(ctx context.Context) error {
		refs, err := env.Async.LoadReferences(ctx, env.Roles, env.Employees)
		if err != nil {
			return err
		}

		employee, err := env.Prompt.Select("Which employee's role do you want to update?", choices.Employees(refs.Employees))
		if err != nil {
			return err
		}
		role, err := env.Prompt.Select("Which role do you want to assign to the selected employee?", choices.Roles(refs.Roles))
		if err != nil {
			return err
		}

		if err := env.Employees.UpdateEmployeeRole(ctx, *employee.ID, *role.ID); err != nil {
			return err
		}
		fmt.Fprintln(env.Out, "Updated employee's role")
		return nil
	}
}
