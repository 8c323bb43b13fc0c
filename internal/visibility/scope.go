package visibility

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scopeKind int

const (
	kindAll scopeKind = iota
	kindRestricted
	kindNone
)

// EmployeeScope is the set of employee rows a principal may see:
// everything, a single department, or nothing at all. "Nothing" is a valid
// outcome (unassigned or unresolved principals), never an error.
type EmployeeScope struct {
	kind         scopeKind
	departmentID uuid.UUID
}

func AllEmployees() EmployeeScope {
	return EmployeeScope{kind: kindAll}
}

func DepartmentOnly(departmentID uuid.UUID) EmployeeScope {
	return EmployeeScope{kind: kindRestricted, departmentID: departmentID}
}

func NoEmployees() EmployeeScope {
	return EmployeeScope{kind: kindNone}
}

func (s EmployeeScope) IsAll() bool  { return s.kind == kindAll }
func (s EmployeeScope) IsNone() bool { return s.kind == kindNone }

func (s EmployeeScope) DepartmentID() (uuid.UUID, bool) {
	if s.kind != kindRestricted {
		return uuid.Nil, false
	}
	return s.departmentID, true
}

// Scope compiles the visibility decision into a gorm scope. It is ANDed
// with any user-supplied filter, so filters can only narrow the visible
// set, never widen it.
func (s EmployeeScope) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch s.kind {
		case kindAll:
			return db
		case kindRestricted:
			return db.Where("department_id = ?", s.departmentID)
		default:
			return db.Where("1 = 0")
		}
	}
}

// Matches reports whether an employee with the given department falls
// inside the scope. Used where rows are composed in memory.
func (s EmployeeScope) Matches(departmentID *uuid.UUID) bool {
	switch s.kind {
	case kindAll:
		return true
	case kindRestricted:
		return departmentID != nil && *departmentID == s.departmentID
	default:
		return false
	}
}

// LeaveScope is the leave-request counterpart: everything, the principal's
// own requests, or nothing.
type LeaveScope struct {
	kind       scopeKind
	employeeID uuid.UUID
}

func AllLeaveRequests() LeaveScope {
	return LeaveScope{kind: kindAll}
}

func OwnLeaveRequests(employeeID uuid.UUID) LeaveScope {
	return LeaveScope{kind: kindRestricted, employeeID: employeeID}
}

func NoLeaveRequests() LeaveScope {
	return LeaveScope{kind: kindNone}
}

func (s LeaveScope) IsAll() bool  { return s.kind == kindAll }
func (s LeaveScope) IsNone() bool { return s.kind == kindNone }

func (s LeaveScope) EmployeeID() (uuid.UUID, bool) {
	if s.kind != kindRestricted {
		return uuid.Nil, false
	}
	return s.employeeID, true
}

func (s LeaveScope) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch s.kind {
		case kindAll:
			return db
		case kindRestricted:
			return db.Where("employee_id = ?", s.employeeID)
		default:
			return db.Where("1 = 0")
		}
	}
}

func (s LeaveScope) Matches(employeeID uuid.UUID) bool {
	switch s.kind {
	case kindAll:
		return true
	case kindRestricted:
		return employeeID == s.employeeID
	default:
		return false
	}
}
