package flows

import (
	"context"
	"fmt"

	"employee-tracker/internal/delivery/cli/choices"
	"employee-tracker/internal/delivery/cli/router"
	"employee-tracker/internal/domain"
)

func addRole(env Env) router.HandlerFunc {
	return func(ctx context.Context) error {
		departments, err := env.Departments.GetAllDepartments(ctx)
		if err != nil {
			return err
		}

		title, err := env.Prompt.Input("What is the name of the role?")
		if err != nil {
			return err
		}
		salary, err := env.Prompt.Input("What is the salary of the role?")
		if err != nil {
			return err
		}
		dept, err := env.Prompt.Select("Which department does the role belong to?", choices.Departments(departments))
		if err != nil {
			return err
		}

		_, err = env.Roles.AddRole(ctx, domain.NewRole{
			Title:        title,
			Salary:       salary,
			DepartmentID: *dept.ID,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, "Added role to the database")
		return nil
	}
}
