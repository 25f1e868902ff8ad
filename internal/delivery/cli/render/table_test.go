package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"employee-tracker/internal/model"
)

func TestRolesTable(t *testing.T) {
	var buf bytes.Buffer
	Roles(&buf, []model.RoleRow{{ID: 1, Title: "Engineer", Salary: 50000, Department: "Engineering"}})

	out := buf.String()
	assert.Contains(t, out, "department")
	assert.Contains(t, out, "| Engineer |")
	assert.Contains(t, out, " 50000 |")
	assert.NotContains(t, out, "50000.00")
}

func TestEmployeesTableNullColumns(t *testing.T) {
	var buf bytes.Buffer
	title := "Engineer"
	Employees(&buf, []model.EmployeeRow{{ID: 4, FirstName: "Alice", LastName: "Smith", Title: &title}})

	var dataLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "Alice") {
			dataLine = line
		}
	}
	cells := strings.Split(strings.Trim(strings.TrimSpace(dataLine), "|"), "|")
	assert.Len(t, cells, 7)
	assert.Equal(t, "Engineer", strings.TrimSpace(cells[3]))
	assert.Empty(t, strings.TrimSpace(cells[6]), "manager column must be blank")
}
