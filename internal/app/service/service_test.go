package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-tracker/internal/app/service"
	"employee-tracker/internal/domain"
	"employee-tracker/internal/model"
	"employee-tracker/internal/repository/sqlrepo"
	"employee-tracker/internal/repository/sqlrepo/sqlrepotest"
	"employee-tracker/pkg/workerpool"
)

func TestGatherKeepsOrder(t *testing.T) {
	pool := workerpool.NewWorkerPool(2, 4)
	defer pool.Close()

	for name, async := range map[string]*service.AsyncService{
		"pool":   service.NewAsyncService(pool),
		"inline": service.NewAsyncService(nil),
	} {
		t.Run(name, func(t *testing.T) {
			values, err := async.Gather(context.Background(),
				func(context.Context) (any, error) { return "roles", nil },
				func(context.Context) (any, error) { return "employees", nil },
			)
			require.NoError(t, err)
			assert.Equal(t, []any{"roles", "employees"}, values)
		})
	}
}

func TestGatherReturnsError(t *testing.T) {
	pool := workerpool.NewWorkerPool(2, 4)
	defer pool.Close()

	boom := errors.New("boom")
	_, err := service.NewAsyncService(pool).Gather(context.Background(),
		func(context.Context) (any, error) { return 1, nil },
		func(context.Context) (any, error) { return nil, boom },
	)
	assert.ErrorIs(t, err, boom)
}

func TestGatherClosedPool(t *testing.T) {
	pool := workerpool.NewWorkerPool(1, 1)
	pool.Close()

	_, err := service.NewAsyncService(pool).Gather(context.Background(),
		func(context.Context) (any, error) { return 1, nil },
	)
	assert.ErrorIs(t, err, workerpool.ErrClosed)
}

func TestLoadReferences(t *testing.T) {
	ctx := context.Background()
	db := sqlrepotest.Open(t)
	departments := service.NewDepartmentService(sqlrepo.NewDepartmentRepo(db))
	roles := service.NewRoleService(sqlrepo.NewRoleRepo(db))
	employees := service.NewEmployeeService(sqlrepo.NewEmployeeRepo(db))

	pool := workerpool.NewWorkerPool(2, 4)
	defer pool.Close()
	async := service.NewAsyncService(pool)

	refs, err := async.LoadReferences(ctx, roles, employees)
	require.NoError(t, err)
	assert.Empty(t, refs.Roles)
	assert.Empty(t, refs.Employees)

	deptID, err := departments.AddDepartment(ctx, "Sales")
	require.NoError(t, err)
	roleID, err := roles.AddRole(ctx, domain.NewRole{Title: "Salesperson", Salary: "40000", DepartmentID: deptID})
	require.NoError(t, err)
	_, err = employees.AddEmployee(ctx, domain.NewEmployee{FirstName: "Mike", LastName: "Chan", RoleID: roleID})
	require.NoError(t, err)

	refs, err = async.LoadReferences(ctx, roles, employees)
	require.NoError(t, err)
	require.Len(t, refs.Roles, 1)
	require.Len(t, refs.Employees, 1)
	assert.Equal(t, "Mike Chan", refs.Employees[0].FullName())
}

type failingRoleRepo struct{}

func (failingRoleRepo) GetAllRoles(context.Context) ([]domain.Role, error) {
	return nil, errors.New("table role is gone")
}

func (failingRoleRepo) GetRoleRows(context.Context) ([]model.RoleRow, error) {
	return nil, errors.New("table role is gone")
}

func (failingRoleRepo) AddRole(context.Context, domain.NewRole) (int64, error) {
	return 0, errors.New("table role is gone")
}

func TestServiceWrapsErrors(t *testing.T) {
	roles := service.NewRoleService(failingRoleRepo{})

	_, err := roles.GetRoleRows(context.Background())
	assert.EqualError(t, err, "view roles: table role is gone")

	_, err = roles.AddRole(context.Background(), domain.NewRole{Title: "Engineer"})
	assert.EqualError(t, err, `add role "Engineer": table role is gone`)
}
