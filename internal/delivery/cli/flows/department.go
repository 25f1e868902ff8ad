package flows

import (
	"context"
	"fmt"

	"employee-tracker/internal/delivery/cli/router"
)

func addDepartment(env Env) router.HandlerFunc {
	return func(ctx context.Context) error {
		name, err := env.Prompt.Input("What is the name of the department?")
		if err != nil {
			return err
		}
		if _, err := env.Departments.AddDepartment(ctx, name); err != nil {
			return err
		}
		fmt.Fprintln(env.Out, "Added department to the database")
		return nil
	}
}
