package sqlrepo

import (
	"context"
	"database/sql"

	"employee-tracker/internal/domain"
	"employee-tracker/internal/model"
)

type RoleRepo struct {
	db *sql.DB
}

func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

// GetAllRoles reads only what a choice list needs; Salary and DepartmentID
// are left zero.
func (r *RoleRepo) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title FROM role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Title); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

const roleRowsQuery = `
SELECT r.id, r.title, r.salary, d.name
FROM role r
JOIN department d ON r.department_id = d.id`

func (r *RoleRepo) GetRoleRows(ctx context.Context) ([]model.RoleRow, error) {
	rows, err := r.db.QueryContext(ctx, roleRowsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RoleRow
	for rows.Next() {
		var row model.RoleRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Salary, &row.Department); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *RoleRepo) AddRole(ctx context.Context, role domain.NewRole) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO role (title, salary, department_id) VALUES (?, ?, ?)`,
		role.Title,
		role.Salary,
		role.DepartmentID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
