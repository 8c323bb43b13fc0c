package report

import (
	"context"
	"sort"
	"time"

	"github.com/Slawuu/Company-manager/internal/authz"
	"github.com/Slawuu/Company-manager/internal/employee"
	"github.com/Slawuu/Company-manager/internal/leave"
	"github.com/Slawuu/Company-manager/internal/shared/apperror"
	"github.com/Slawuu/Company-manager/internal/visibility"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	EmployeesByDepartment(ctx context.Context, p authz.Principal) ([]DepartmentGroup, error)
	HiredInPeriod(ctx context.Context, p authz.Principal, start, end *time.Time) ([]ReportEmployee, error)
	ProjectsSummary(ctx context.Context, p authz.Principal) ([]ProjectSummary, error)
	LeaveRequestsSummary(ctx context.Context, p authz.Principal, year *int) ([]LeaveSummaryItem, error)
}

type service struct {
	repo     Repository
	resolver visibility.Resolver
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, resolver visibility.Resolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, resolver: resolver, now: func() time.Time { return time.Now().UTC() }, logger: l}
}

// NewServiceWithClock pins the clock for tests covering the default
// reporting windows.
func NewServiceWithClock(repo Repository, resolver visibility.Resolver, now func() time.Time, logger ...*zap.Logger) Service {
	svc := NewService(repo, resolver, logger...).(*service)
	svc.now = now
	return svc
}

func (s *service) EmployeesByDepartment(ctx context.Context, p authz.Principal) ([]DepartmentGroup, error) {
	if !p.HasAnyRole(authz.EmployeeVisibilityRoles...) {
		return nil, apperror.ErrForbidden
	}

	empls, err := s.repo.EmployeesWithDepartment(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]ReportEmployee)
	for _, empl := range empls {
		if empl.Department == nil {
			continue
		}
		name := empl.Department.Name
		groups[name] = append(groups[name], mapReportEmployee(empl))
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := make([]DepartmentGroup, len(names))
	for i, name := range names {
		resp[i] = DepartmentGroup{Department: name, Employees: groups[name]}
	}
	return resp, nil
}

// HiredInPeriod defaults to the trailing six months when neither bound is
// given; a single bound leaves the other side open.
func (s *service) HiredInPeriod(ctx context.Context, p authz.Principal, start, end *time.Time) ([]ReportEmployee, error) {
	if !p.HasAnyRole(authz.EmployeeVisibilityRoles...) {
		return nil, apperror.ErrForbidden
	}

	if start == nil && end == nil {
		now := s.now()
		defaultStart := now.AddDate(0, -6, 0)
		start = &defaultStart
		end = &now
	}

	empls, err := s.repo.HiredBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := make([]ReportEmployee, len(empls))
	for i, empl := range empls {
		resp[i] = mapReportEmployee(empl)
	}
	return resp, nil
}

func (s *service) ProjectsSummary(ctx context.Context, p authz.Principal) ([]ProjectSummary, error) {
	if !p.HasAnyRole(authz.EmployeeVisibilityRoles...) {
		return nil, apperror.ErrForbidden
	}

	projs, err := s.repo.ProjectsWithAssignments(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ProjectSummary, len(projs))
	for i, proj := range projs {
		summary := ProjectSummary{
			ID:          proj.ID.String(),
			Name:        proj.Name,
			StartDate:   proj.StartDate.Format("2006-01-02"),
			Assignments: make([]ProjectAssignmentSummary, len(proj.Assignments)),
		}
		if proj.EndDate != nil {
			v := proj.EndDate.Format("2006-01-02")
			summary.EndDate = &v
		}
		for j, a := range proj.Assignments {
			as := ProjectAssignmentSummary{
				EmployeeID:   a.EmployeeID.String(),
				AssignedDate: a.AssignedDate.Format("2006-01-02"),
			}
			if a.Employee != nil {
				as.FullName = a.Employee.FullName()
			}
			summary.Assignments[j] = as
		}
		resp[i] = summary
	}
	return resp, nil
}

// LeaveRequestsSummary is visible to every role; the leave scope narrows
// the rows. A request belongs to a year when either endpoint falls in it,
// so one spanning New Year shows up in both years' summaries.
func (s *service) LeaveRequestsSummary(ctx context.Context, p authz.Principal, year *int) ([]LeaveSummaryItem, error) {
	y := s.now().Year()
	if year != nil {
		y = *year
	}

	scope, err := s.resolver.LeaveScope(ctx, p)
	if err != nil {
		return nil, err
	}
	if scope.IsNone() {
		return []LeaveSummaryItem{}, nil
	}

	lrs, err := s.repo.LeaveRequestsScoped(ctx, scope)
	if err != nil {
		return nil, err
	}

	matched := lrs[:0:0]
	for _, lr := range lrs {
		if lr.StartDate.Year() == y || lr.EndDate.Year() == y {
			matched = append(matched, lr)
		}
	}

	// Pending first (status ordinals ascending), newest submissions first
	// within the same status. Stable so equal keys keep storage order.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Status != matched[j].Status {
			return matched[i].Status < matched[j].Status
		}
		return matched[i].RequestDate.After(matched[j].RequestDate)
	})

	resp := make([]LeaveSummaryItem, len(matched))
	for i, lr := range matched {
		resp[i] = mapLeaveSummary(lr)
	}
	return resp, nil
}

func mapReportEmployee(empl employee.Employee) ReportEmployee {
	return ReportEmployee{
		ID:       empl.ID.String(),
		FullName: empl.FullName(),
		Position: empl.Position,
		HireDate: empl.HireDate.Format("2006-01-02"),
	}
}

func mapLeaveSummary(lr leave.LeaveRequest) LeaveSummaryItem {
	item := LeaveSummaryItem{
		ID:          lr.ID.String(),
		EmployeeID:  lr.EmployeeID.String(),
		StartDate:   lr.StartDate.Format("2006-01-02"),
		EndDate:     lr.EndDate.Format("2006-01-02"),
		LeaveType:   lr.LeaveType,
		Status:      lr.Status.String(),
		RequestDate: lr.RequestDate.Format(time.RFC3339),
	}
	if lr.Employee != nil {
		v := lr.Employee.FullName()
		item.EmployeeName = &v
	}
	return item
}
