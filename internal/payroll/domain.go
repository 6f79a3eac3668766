// Package payroll derives the salary view from the employee directory.
package payroll

// Entry is one payroll row. Annual and Monthly are parsed leniently from
// the employee's display salary; unparseable salaries count as zero.
type Entry struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Department string  `json:"department"`
	Salary     string  `json:"salary"`
	Annual     float64 `json:"annual"`
	Monthly    float64 `json:"monthly"`
}

type Summary struct {
	EmployeeCount int     `json:"employee_count"`
	TotalAnnual   float64 `json:"total_annual"`
	TotalMonthly  float64 `json:"total_monthly"`
	AverageAnnual float64 `json:"average_annual"`
}
