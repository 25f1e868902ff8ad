package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"employee-tracker/internal/domain"
	"employee-tracker/internal/model"
)

// Table writes header and rows as an ASCII table. Headers are printed as
// given, not upper-cased.
func Table(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func Departments(w io.Writer, departments []domain.Department) {
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{id(d.ID), d.Name})
	}
	Table(w, []string{"id", "name"}, rows)
}

func Roles(w io.Writer, roles []model.RoleRow) {
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{id(r.ID), r.Title, money(r.Salary), r.Department})
	}
	Table(w, []string{"id", "title", "salary", "department"}, rows)
}

func Employees(w io.Writer, employees []model.EmployeeRow) {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		salary := ""
		if e.Salary != nil {
			salary = money(*e.Salary)
		}
		rows = append(rows, []string{
			id(e.ID),
			e.FirstName,
			e.LastName,
			deref(e.Title),
			deref(e.Department),
			salary,
			deref(e.Manager),
		})
	}
	Table(w, []string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}, rows)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
