package report

import (
	"context"
	"sort"

	"github.com/pauldemian98/portal-rh/internal/employee"
	"github.com/pauldemian98/portal-rh/internal/punch"

	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Summaries(ctx context.Context, employeeID, start, end string) ([]DailySummary, error)
	CompanySummaries(ctx context.Context, start, end string) ([]EmployeeReport, error)
	ExportCSV(ctx context.Context, employeeID, start, end string) ([]byte, error)
	ExportXLSX(ctx context.Context, employeeID, start, end string) ([]byte, error)
}

type service struct {
	punches      punch.Service
	employeeRepo employee.Repository
	cache        Cache
	group        singleflight.Group
}

func NewService(punches punch.Service, employeeRepo employee.Repository, cache Cache) Service {
	return &service{
		punches:      punches,
		employeeRepo: employeeRepo,
		cache:        cache,
	}
}

// Summaries builds the per-day view of an employee's punches,
// day-descending as the dashboard lists them. Results are cached and
// concurrent identical builds are collapsed.
func (s *service) Summaries(ctx context.Context, employeeID, start, end string) ([]DailySummary, error) {
	key := summaryKey(employeeID, start, end)
	if cached, ok := s.cache.GetSummaries(ctx, key); ok {
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		summaries, err := s.buildSummaries(ctx, employeeID, start, end)
		if err != nil {
			return nil, err
		}
		s.cache.SetSummaries(ctx, key, summaries)
		return summaries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]DailySummary), nil
}

func (s *service) buildSummaries(ctx context.Context, employeeID, start, end string) ([]DailySummary, error) {
	events, err := s.punches.ListEvents(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]punch.PunchEventResponse)
	for _, ev := range events {
		byDay[ev.Date] = append(byDay[ev.Date], ev)
	}

	summaries := make([]DailySummary, 0, len(byDay))
	for date, evs := range byDay {
		summaries = append(summaries, DailySummary{
			Date:        date,
			Events:      evs,
			WorkedHours: workedHours(len(evs)),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
	return summaries, nil
}

// CompanySummaries is the HR-wide view across the whole directory.
func (s *service) CompanySummaries(ctx context.Context, start, end string) ([]EmployeeReport, error) {
	emps, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]EmployeeReport, 0, len(emps))
	for _, emp := range emps {
		days, err := s.Summaries(ctx, emp.ID.String(), start, end)
		if err != nil {
			return nil, err
		}
		reports = append(reports, EmployeeReport{
			EmployeeID: emp.ID.String(),
			Name:       emp.Name,
			Days:       days,
		})
	}
	return reports, nil
}
