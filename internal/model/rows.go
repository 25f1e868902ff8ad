package model

// EmployeeRow is one line of the employee listing. Joined columns are nil when
// the outer join found nothing.
type EmployeeRow struct {
	ID         int64
	FirstName  string
	LastName   string
	Title      *string
	Department *string
	Salary     *float64
	Manager    *string
}

type RoleRow struct {
	ID         int64
	Title      string
	Salary     float64
	Department string
}
