package authz_test

import (
	"testing"

	"github.com/Slawuu/Company-manager/internal/authz"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    authz.Role
		wantErr bool
	}{
		{"ADMIN", authz.RoleAdmin, false},
		{"hr", authz.RoleHR, false},
		{" manager ", authz.RoleManager, false},
		{"Employee", authz.RoleEmployee, false},
		{"superuser", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		role, err := authz.ParseRole(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, role)
	}
}

func TestService_Can(t *testing.T) {
	svc, err := authz.NewService()
	require.NoError(t, err)

	principal := func(role authz.Role) authz.Principal {
		return authz.Principal{AccountID: uuid.New(), Role: role}
	}

	cases := []struct {
		name     string
		role     authz.Role
		resource string
		action   string
		allowed  bool
	}{
		{"admin decides leave", authz.RoleAdmin, authz.ResourceLeave, authz.ActionDecide, true},
		{"manager decides leave", authz.RoleManager, authz.ResourceLeave, authz.ActionDecide, true},
		{"hr cannot decide leave", authz.RoleHR, authz.ResourceLeave, authz.ActionDecide, false},
		{"employee cannot decide leave", authz.RoleEmployee, authz.ResourceLeave, authz.ActionDecide, false},

		{"hr creates employees", authz.RoleHR, authz.ResourceEmployee, authz.ActionCreate, true},
		{"manager cannot create employees", authz.RoleManager, authz.ResourceEmployee, authz.ActionCreate, false},
		{"employee cannot delete employees", authz.RoleEmployee, authz.ResourceEmployee, authz.ActionDelete, false},

		{"manager manages projects", authz.RoleManager, authz.ResourceProject, authz.ActionCreate, true},
		{"hr cannot manage projects", authz.RoleHR, authz.ResourceProject, authz.ActionCreate, false},
		{"employee cannot read projects", authz.RoleEmployee, authz.ResourceProject, authz.ActionRead, false},

		{"every role reads reports", authz.RoleEmployee, authz.ResourceReport, authz.ActionRead, true},
		{"every role submits leave", authz.RoleEmployee, authz.ResourceLeave, authz.ActionCreate, true},
		{"every role reads own profile", authz.RoleEmployee, authz.ResourceProfile, authz.ActionRead, true},

		{"hr manages departments", authz.RoleHR, authz.ResourceDepartment, authz.ActionDelete, true},
		{"manager cannot manage departments", authz.RoleManager, authz.ResourceDepartment, authz.ActionUpdate, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Can(principal(tc.role), tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestPrincipal_HasAnyRole(t *testing.T) {
	p := authz.Principal{AccountID: uuid.New(), Role: authz.RoleManager}

	assert.True(t, p.HasAnyRole(authz.EmployeeVisibilityRoles...))
	assert.False(t, p.HasAnyRole(authz.SubmitOnBehalfRoles...))
	assert.False(t, p.HasAnyRole())
}
