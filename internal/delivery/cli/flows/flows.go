package flows

import (
	"io"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/cli/prompt"
	"employee-tracker/internal/delivery/cli/router"
)

// Menu labels, in menu order.
const (
	ViewEmployees      = "View all employees"
	ViewDepartments    = "View all departments"
	ViewRoles          = "View all roles"
	AddEmployee        = "Add an employee"
	AddDepartment      = "Add a department"
	AddRole            = "Add a role"
	UpdateEmployeeRole = "Update an employee role"
	Exit               = "Exit"
)

// Env is what every flow needs: a way to ask, a place to print, and the
// services behind the three tables.
type Env struct {
	Prompt      prompt.Prompter
	Out         io.Writer
	Departments *service.DepartmentService
	Roles       *service.RoleService
	Employees   *service.EmployeeService
	Async       *service.AsyncService
}

// Register adds the seven actions to r in menu order. Exit is not a flow;
// the caller handles it.
func Register(r *router.Router, env Env) {
	r.Register(ViewEmployees, viewEmployees(env))
	r.Register(ViewDepartments, viewDepartments(env))
	r.Register(ViewRoles, viewRoles(env))
	r.Register(AddEmployee, addEmployee(env))
	r.Register(AddDepartment, addDepartment(env))
	r.Register(AddRole, addRole(env))
	r.Register(UpdateEmployeeRole, updateEmployeeRole(env))
}
