package domain

import "strings"

// Department is a static clinic department record, used for display
// and for filtering slot availability. Not derived data.
type Department struct {
	Code        string
	Name        string
	Description string
}

// Departments returns the clinic's department catalog in display order.
func Departments() []Department {
	return []Department{
		{Code: "D01", Name: "General Medicine", Description: "General check-ups and treatment of common conditions"},
		{Code: "D02", Name: "Dentistry", Description: "Oral care, orthodontics, minor dental surgery"},
		{Code: "D03", Name: "ENT", Description: "Ear, nose and throat examination and treatment"},
		{Code: "D04", Name: "Ophthalmology", Description: "Vision tests, myopia and astigmatism treatment"},
		{Code: "D05", Name: "Dermatology", Description: "Acne, dermatitis, allergies, skin aging"},
		{Code: "D06", Name: "Pediatrics", Description: "Child check-ups, nutrition advice, vaccination"},
	}
}

// ResolveDepartment matches a user-supplied department query against the
// catalog by code or name, case-insensitively. Returns false when no
// department matches.
func ResolveDepartment(query string) (Department, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Department{}, false
	}
	for _, d := range Departments() {
		if strings.ToLower(d.Code) == q || strings.ToLower(d.Name) == q {
			return d, true
		}
	}
	return Department{}, false
}

// DepartmentNames returns the display names of all departments.
func DepartmentNames() []string {
	depts := Departments()
	names := make([]string, len(depts))
	for i, d := range depts {
		names[i] = d.Name
	}
	return names
}

// IsKnownDepartment reports whether name is one of the catalog display names.
func IsKnownDepartment(name string) bool {
	_, ok := ResolveDepartment(name)
	return ok
}
