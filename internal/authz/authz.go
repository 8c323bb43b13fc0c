package authz

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role is the single role an account holds. The set is closed; anything
// else coming out of a token or the database is rejected at parse time.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleHR:
		return RoleHR, nil
	case RoleManager:
		return RoleManager, nil
	case RoleEmployee:
		return RoleEmployee, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Named capability sets. Services check membership through
// Principal.HasAnyRole instead of comparing role strings at call sites.
var (
	// EmployeeVisibilityRoles see every employee regardless of department.
	EmployeeVisibilityRoles = []Role{RoleAdmin, RoleHR, RoleManager}
	// LeaveVisibilityRoles see every leave request.
	LeaveVisibilityRoles = []Role{RoleAdmin, RoleHR, RoleManager}
	// LeaveDecisionRoles may approve or reject a leave request.
	LeaveDecisionRoles = []Role{RoleAdmin, RoleManager}
	// SubmitOnBehalfRoles may submit a leave request for another employee.
	SubmitOnBehalfRoles = []Role{RoleAdmin, RoleHR}
	// EmployeeAdminRoles may create, edit and delete employee records.
	EmployeeAdminRoles = []Role{RoleAdmin, RoleHR}
)

// Principal is the authenticated actor. It is resolved once per request by
// the auth middleware and passed explicitly into every service operation;
// nothing in the core reads identity from ambient state.
type Principal struct {
	AccountID  uuid.UUID
	Role       Role
	EmployeeID *uuid.UUID // linked employee record, nil when none exists
}

func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
