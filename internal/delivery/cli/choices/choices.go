package choices

import "employee-tracker/internal/domain"

// NoneLabel is the manager option that stores no manager.
const NoneLabel = "None"

// Choice is one option of a select prompt: the label shown to the operator
// and the identifier stored when it is picked. ID is nil for options that
// stand for "no row", such as NoneLabel.
type Choice struct {
	Label string
	ID    *int64
}

func FromLabels(labels []string) []Choice {
	out := make([]Choice, 0, len(labels))
	for _, l := range labels {
		out = append(out, Choice{Label: l})
	}
	return out
}

func Departments(departments []domain.Department) []Choice {
	out := make([]Choice, 0, len(departments))
	for _, d := range departments {
		out = append(out, Choice{Label: d.Name, ID: ptr(d.ID)})
	}
	return out
}

func Roles(roles []domain.Role) []Choice {
	out := make([]Choice, 0, len(roles))
	for _, r := range roles {
		out = append(out, Choice{Label: r.Title, ID: ptr(r.ID)})
	}
	return out
}

func Employees(employees []domain.Employee) []Choice {
	out := make([]Choice, 0, len(employees))
	for _, e := range employees {
		out = append(out, Choice{Label: e.FullName(), ID: ptr(e.ID)})
	}
	return out
}

// Managers is Employees with a leading NoneLabel option.
func Managers(employees []domain.Employee) []Choice {
	return append([]Choice{{Label: NoneLabel}}, Employees(employees)...)
}

func ptr(id int64) *int64 {
	return &id
}
