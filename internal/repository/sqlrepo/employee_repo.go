package sqlrepo

import (
	"context"
	"database/sql"

	"employee-tracker/internal/domain"
	"employee-tracker/internal/model"
)

type EmployeeRepo struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) GetAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, first_name, last_name, role_id, manager_id FROM employee`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		var managerID sql.NullInt64
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.RoleID, &managerID); err != nil {
			return nil, err
		}
		if managerID.Valid {
			id := managerID.Int64
			e.ManagerID = &id
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// The manager name is assembled in Go rather than with CONCAT so the same
// statement runs on MySQL and SQLite.
const employeeRowsQuery = `
SELECT e.id, e.first_name, e.last_name, r.title, d.name, r.salary, m.first_name, m.last_name
FROM employee e
LEFT JOIN role r ON e.role_id = r.id
LEFT JOIN department d ON r.department_id = d.id
LEFT JOIN employee m ON m.id = e.manager_id`

func (r *EmployeeRepo) GetEmployeeRows(ctx context.Context) ([]model.EmployeeRow, error) {
	rows, err := r.db.QueryContext(ctx, employeeRowsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EmployeeRow
	for rows.Next() {
		var row model.EmployeeRow
		var title, department, managerFirst, managerLast sql.NullString
		var salary sql.NullFloat64
		if err := rows.Scan(&row.ID, &row.FirstName, &row.LastName, &title, &department, &salary, &managerFirst, &managerLast); err != nil {
			return nil, err
		}
		row.Title = nullString(title)
		row.Department = nullString(department)
		if salary.Valid {
			s := salary.Float64
			row.Salary = &s
		}
		if managerFirst.Valid && managerLast.Valid {
			name := managerFirst.String + " " + managerLast.String
			row.Manager = &name
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *EmployeeRepo) AddEmployee(ctx context.Context, e domain.NewEmployee) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO employee (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)`,
		e.FirstName,
		e.LastName,
		e.RoleID,
		e.ManagerID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *EmployeeRepo) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE employee SET role_id = ? WHERE id = ?`, roleID, employeeID)
	return err
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
