package payroll

import (
	"context"

	employeedomain "github.com/atriumhq/atrium/internal/employee/domain"
	"github.com/atriumhq/atrium/internal/money"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Employees employeedomain.Repository
}

type Service struct {
	log       *zap.Logger
	employees employeedomain.Repository
}

func New(p Params) *Service {
	return &Service{
		log:       p.Log.Named("payroll.service"),
		employees: p.Employees,
	}
}

// Entries returns one payroll row per employee, ordered by name.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	employees, err := s.employees.All(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(employees))
	for _, employee := range employees {
		annual := money.ParseLenient(employee.Salary)
		entries = append(entries, Entry{
			EmployeeID: employee.ID.String(),
			Name:       employee.Name,
			Title:      employee.Title,
			Department: employee.Department,
			Salary:     employee.Salary,
			Annual:     annual,
			Monthly:    annual / 12,
		})
	}
	return entries, nil
}

// Summarize aggregates the payroll rows.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{EmployeeCount: len(entries)}
	for _, entry := range entries {
		summary.TotalAnnual += entry.Annual
		summary.TotalMonthly += entry.Monthly
	}
	if summary.EmployeeCount > 0 {
		summary.AverageAnnual = summary.TotalAnnual / float64(summary.EmployeeCount)
	}
	return summary, nil
}

var Module = fx.Module("payroll.service",
	fx.Provide(New),
)
