package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/Slawuu/Company-manager/internal/authz"
	"github.com/Slawuu/Company-manager/internal/department"
	"github.com/Slawuu/Company-manager/internal/employee"
	"github.com/Slawuu/Company-manager/internal/leave"
	"github.com/Slawuu/Company-manager/internal/project"
	"github.com/Slawuu/Company-manager/internal/report"
	reportMock "github.com/Slawuu/Company-manager/internal/report/mock"
	"github.com/Slawuu/Company-manager/internal/shared/apperror"
	"github.com/Slawuu/Company-manager/internal/visibility"
	visibilityMock "github.com/Slawuu/Company-manager/internal/visibility/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service  report.Service
	repo     *reportMock.MockRepository
	resolver *visibilityMock.MockResolver
}

// frozenNow pins the clock so the default windows are deterministic.
var frozenNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := reportMock.NewMockRepository(ctrl)
	resolver := visibilityMock.NewMockResolver(ctrl)
	svc := report.NewServiceWithClock(repo, resolver, func() time.Time { return frozenNow })

	return &serviceDeps{service: svc, repo: repo, resolver: resolver}
}

func hrPrincipal() authz.Principal {
	return authz.Principal{AccountID: uuid.New(), Role: authz.RoleHR}
}

func plainPrincipal() authz.Principal {
	return authz.Principal{AccountID: uuid.New(), Role: authz.RoleEmployee}
}

func deptEmployee(dept *department.Department, lastName string) employee.Employee {
	var deptID *uuid.UUID
	if dept != nil {
		deptID = &dept.ID
	}
	return employee.Employee{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     lastName,
		Position:     "Engineer",
		HireDate:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		DepartmentID: deptID,
		Department:   dept,
	}
}

func TestReportService_EmployeesByDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("groups are keyed and ordered by department name", func(t *testing.T) {
		deps := setupServiceTest(t)

		sales := &department.Department{ID: uuid.New(), Name: "Sales"}
		eng := &department.Department{ID: uuid.New(), Name: "Engineering"}

		deps.repo.EXPECT().
			EmployeesWithDepartment(ctx).
			Return([]employee.Employee{
				deptEmployee(sales, "Adams"),
				deptEmployee(eng, "Baker"),
				deptEmployee(sales, "Clark"),
			}, nil)

		groups, err := deps.service.EmployeesByDepartment(ctx, hrPrincipal())

		assert.NoError(t, err)
		assert.Len(t, groups, 2)
		assert.Equal(t, "Engineering", groups[0].Department)
		assert.Equal(t, "Sales", groups[1].Department)
		assert.Len(t, groups[1].Employees, 2)
	})

	t.Run("regular employees may not run it", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.EmployeesByDepartment(ctx, plainPrincipal())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestReportService_HiredInPeriod(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the trailing six months", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			HiredBetween(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, start, end *time.Time) ([]employee.Employee, error) {
				assert.NotNil(t, start)
				assert.NotNil(t, end)
				assert.True(t, start.Equal(frozenNow.AddDate(0, -6, 0)))
				assert.True(t, end.Equal(frozenNow))
				return []employee.Employee{}, nil
			})

		_, err := deps.service.HiredInPeriod(ctx, hrPrincipal(), nil, nil)

		assert.NoError(t, err)
	})

	t.Run("a single bound leaves the other side open", func(t *testing.T) {
		deps := setupServiceTest(t)

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		deps.repo.EXPECT().
			HiredBetween(ctx, &start, nil).
			Return([]employee.Employee{deptEmployee(nil, "Adams")}, nil)

		resp, err := deps.service.HiredInPeriod(ctx, hrPrincipal(), &start, nil)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "2025-01-10", resp[0].HireDate)
	})

	t.Run("regular employees may not run it", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.HiredInPeriod(ctx, plainPrincipal(), nil, nil)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestReportService_LeaveRequestsSummary(t *testing.T) {
	ctx := context.Background()

	leaveRow := func(status leave.Status, start, end, requested time.Time) leave.LeaveRequest {
		return leave.LeaveRequest{
			ID:          uuid.New(),
			EmployeeID:  uuid.New(),
			StartDate:   start,
			EndDate:     end,
			LeaveType:   "vacation",
			Status:      status,
			RequestDate: requested,
		}
	}

	t.Run("orders by status then newest request first", func(t *testing.T) {
		deps := setupServiceTest(t)
		p := hrPrincipal()

		day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }
		rows := []leave.LeaveRequest{
			leaveRow(leave.StatusRejected, day(1), day(2), day(1)),
			leaveRow(leave.StatusApproved, day(3), day(4), day(2)),
			leaveRow(leave.StatusPending, day(5), day(6), day(3)),
			leaveRow(leave.StatusPending, day(7), day(8), day(10)),
			leaveRow(leave.StatusApproved, day(9), day(10), day(9)),
		}

		deps.resolver.EXPECT().LeaveScope(ctx, p).Return(visibility.AllLeaveRequests(), nil)
		deps.repo.EXPECT().LeaveRequestsScoped(ctx, gomock.Any()).Return(rows, nil)

		items, err := deps.service.LeaveRequestsSummary(ctx, p, nil)

		assert.NoError(t, err)
		assert.Len(t, items, 5)
		assert.Equal(t, []string{"PENDING", "PENDING", "APPROVED", "APPROVED", "REJECTED"}, []string{
			items[0].Status, items[1].Status, items[2].Status, items[3].Status, items[4].Status,
		})
		// within PENDING the later submission comes first
		assert.Equal(t, rows[3].ID.String(), items[0].ID)
		assert.Equal(t, rows[2].ID.String(), items[1].ID)
	})

	t.Run("a request spanning new year belongs to both years", func(t *testing.T) {
		spanning := leaveRow(
			leave.StatusPending,
			time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		)

		for _, year := range []int{2025, 2026} {
			deps := setupServiceTest(t)
			p := hrPrincipal()

			deps.resolver.EXPECT().LeaveScope(ctx, p).Return(visibility.AllLeaveRequests(), nil)
			deps.repo.EXPECT().LeaveRequestsScoped(ctx, gomock.Any()).Return([]leave.LeaveRequest{spanning}, nil)

			y := year
			items, err := deps.service.LeaveRequestsSummary(ctx, p, &y)

			assert.NoError(t, err)
			assert.Len(t, items, 1, "year %d", year)
		}
	})

	t.Run("requests from other years are dropped", func(t *testing.T) {
		deps := setupServiceTest(t)
		p := hrPrincipal()

		old := leaveRow(
			leave.StatusApproved,
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
		)

		deps.resolver.EXPECT().LeaveScope(ctx, p).Return(visibility.AllLeaveRequests(), nil)
		deps.repo.EXPECT().LeaveRequestsScoped(ctx, gomock.Any()).Return([]leave.LeaveRequest{old}, nil)

		// no year given: the pinned clock says 2026
		items, err := deps.service.LeaveRequestsSummary(ctx, p, nil)

		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("none scope yields an empty summary without touching the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		p := plainPrincipal()

		deps.resolver.EXPECT().LeaveScope(ctx, p).Return(visibility.NoLeaveRequests(), nil)

		items, err := deps.service.LeaveRequestsSummary(ctx, p, nil)

		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestReportService_ProjectsSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("assignments carry the employee name", func(t *testing.T) {
		deps := setupServiceTest(t)

		empl := deptEmployee(nil, "Adams")
		proj := project.Project{
			ID:        uuid.New(),
			Name:      "Migration",
			StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Assignments: []project.ProjectAssignment{
				{
					ID:           uuid.New(),
					EmployeeID:   empl.ID,
					AssignedDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
					Employee:     &empl,
				},
			},
		}

		deps.repo.EXPECT().ProjectsWithAssignments(ctx).Return([]project.Project{proj}, nil)

		resp, err := deps.service.ProjectsSummary(ctx, hrPrincipal())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Nil(t, resp[0].EndDate)
		assert.Len(t, resp[0].Assignments, 1)
		assert.Equal(t, "Test Adams", resp[0].Assignments[0].FullName)
		assert.Equal(t, "2026-02-10", resp[0].Assignments[0].AssignedDate)
	})

	t.Run("regular employees may not run it", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.ProjectsSummary(ctx, plainPrincipal())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}
