package choices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-tracker/internal/domain"
)

func TestManagersStartWithNone(t *testing.T) {
	got := Managers([]domain.Employee{
		{ID: 7, FirstName: "John", LastName: "Doe"},
		{ID: 9, FirstName: "Jane", LastName: "Roe"},
	})

	require.Len(t, got, 3)
	assert.Equal(t, Choice{Label: NoneLabel}, got[0])
	assert.Equal(t, "John Doe", got[1].Label)
	require.NotNil(t, got[2].ID)
	assert.Equal(t, int64(9), *got[2].ID)
}

func TestManagersWithoutEmployees(t *testing.T) {
	assert.Equal(t, []Choice{{Label: NoneLabel}}, Managers(nil))
}

func TestReferenceChoices(t *testing.T) {
	depts := Departments([]domain.Department{{ID: 1, Name: "Engineering"}, {ID: 2, Name: "Legal"}})
	require.Len(t, depts, 2)
	assert.Equal(t, "Legal", depts[1].Label)
	assert.Equal(t, int64(2), *depts[1].ID)

	roles := Roles([]domain.Role{{ID: 3, Title: "Engineer", Salary: 50000}})
	require.Len(t, roles, 1)
	assert.Equal(t, "Engineer", roles[0].Label)
	assert.Equal(t, int64(3), *roles[0].ID)

	// every ID points at its own copy
	assert.NotSame(t, depts[0].ID, depts[1].ID)
}

func TestFromLabels(t *testing.T) {
	assert.Equal(t, []Choice{{Label: "a"}, {Label: "b"}}, FromLabels([]string{"a", "b"}))
}
