//go:build integration

package sqlrepo_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"employee-tracker/config"
	"employee-tracker/internal/domain"
	"employee-tracker/internal/repository/sqlrepo"
)

func TestMySQLRoundTrip(t *testing.T) {
	ctx := context.Background()

	ctr, err := tcmysql.Run(ctx, "mysql:8.0.36",
		tcmysql.WithDatabase("employees_db"),
		tcmysql.WithUsername("root"),
		tcmysql.WithPassword("password"),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "parseTime=true")
	require.NoError(t, err)
	db, err := sql.Open(config.DriverMySQL, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlrepo.Migrate(ctx, db, config.DriverMySQL))

	departments := sqlrepo.NewDepartmentRepo(db)
	roles := sqlrepo.NewRoleRepo(db)
	employees := sqlrepo.NewEmployeeRepo(db)

	deptID, err := departments.AddDepartment(ctx, "Engineering")
	require.NoError(t, err)
	roleID, err := roles.AddRole(ctx, domain.NewRole{Title: "Engineer", Salary: "50000", DepartmentID: deptID})
	require.NoError(t, err)
	_, err = employees.AddEmployee(ctx, domain.NewEmployee{FirstName: "Alice", LastName: "Smith", RoleID: roleID})
	require.NoError(t, err)

	for _, salary := range []string{"fifty", ""} {
		_, err := roles.AddRole(ctx, domain.NewRole{Title: "Intern", Salary: salary, DepartmentID: deptID})
		assert.Error(t, err, "strict mode must reject salary %q", salary)
	}

	roleRows, err := roles.GetRoleRows(ctx)
	require.NoError(t, err)
	require.Len(t, roleRows, 1)
	assert.Equal(t, 50000.0, roleRows[0].Salary)

	rows, err := employees.GetEmployeeRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Manager)
	require.NotNil(t, rows[0].Department)
	assert.Equal(t, "Engineering", *rows[0].Department)
}
