package authz

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

// Resource/action vocabulary used by the route policy.
const (
	ResourceEmployee   = "employee"
	ResourceDepartment = "department"
	ResourceProject    = "project"
	ResourceLeave      = "leave"
	ResourceReport     = "report"
	ResourceProfile    = "profile"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionDecide = "decide"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// rolePolicy is the static role/permission table. Mutations on employees
// and departments belong to Admin/HR, projects to Admin/Manager, leave
// decisions to Admin/Manager. Reads on the scoped collections are open to
// every role; the visibility filter narrows the rows afterwards.
var rolePolicy = [][3]string{
	{string(RoleAdmin), ResourceEmployee, ActionRead},
	{string(RoleAdmin), ResourceEmployee, ActionCreate},
	{string(RoleAdmin), ResourceEmployee, ActionUpdate},
	{string(RoleAdmin), ResourceEmployee, ActionDelete},
	{string(RoleAdmin), ResourceDepartment, ActionRead},
	{string(RoleAdmin), ResourceDepartment, ActionCreate},
	{string(RoleAdmin), ResourceDepartment, ActionUpdate},
	{string(RoleAdmin), ResourceDepartment, ActionDelete},
	{string(RoleAdmin), ResourceProject, ActionRead},
	{string(RoleAdmin), ResourceProject, ActionCreate},
	{string(RoleAdmin), ResourceProject, ActionUpdate},
	{string(RoleAdmin), ResourceProject, ActionDelete},
	{string(RoleAdmin), ResourceLeave, ActionRead},
	{string(RoleAdmin), ResourceLeave, ActionCreate},
	{string(RoleAdmin), ResourceLeave, ActionDecide},
	{string(RoleAdmin), ResourceLeave, ActionDelete},
	{string(RoleAdmin), ResourceReport, ActionRead},
	{string(RoleAdmin), ResourceProfile, ActionRead},
	{string(RoleAdmin), ResourceProfile, ActionUpdate},

	{string(RoleHR), ResourceEmployee, ActionRead},
	{string(RoleHR), ResourceEmployee, ActionCreate},
	{string(RoleHR), ResourceEmployee, ActionUpdate},
	{string(RoleHR), ResourceEmployee, ActionDelete},
	{string(RoleHR), ResourceDepartment, ActionRead},
	{string(RoleHR), ResourceDepartment, ActionCreate},
	{string(RoleHR), ResourceDepartment, ActionUpdate},
	{string(RoleHR), ResourceDepartment, ActionDelete},
	{string(RoleHR), ResourceLeave, ActionRead},
	{string(RoleHR), ResourceLeave, ActionCreate},
	{string(RoleHR), ResourceLeave, ActionDelete},
	{string(RoleHR), ResourceReport, ActionRead},
	{string(RoleHR), ResourceProfile, ActionRead},
	{string(RoleHR), ResourceProfile, ActionUpdate},

	{string(RoleManager), ResourceEmployee, ActionRead},
	{string(RoleManager), ResourceDepartment, ActionRead},
	{string(RoleManager), ResourceProject, ActionRead},
	{string(RoleManager), ResourceProject, ActionCreate},
	{string(RoleManager), ResourceProject, ActionUpdate},
	{string(RoleManager), ResourceProject, ActionDelete},
	{string(RoleManager), ResourceLeave, ActionRead},
	{string(RoleManager), ResourceLeave, ActionCreate},
	{string(RoleManager), ResourceLeave, ActionDecide},
	{string(RoleManager), ResourceLeave, ActionDelete},
	{string(RoleManager), ResourceReport, ActionRead},
	{string(RoleManager), ResourceProfile, ActionRead},
	{string(RoleManager), ResourceProfile, ActionUpdate},

	{string(RoleEmployee), ResourceEmployee, ActionRead},
	{string(RoleEmployee), ResourceDepartment, ActionRead},
	{string(RoleEmployee), ResourceLeave, ActionRead},
	{string(RoleEmployee), ResourceLeave, ActionCreate},
	{string(RoleEmployee), ResourceLeave, ActionDelete},
	{string(RoleEmployee), ResourceReport, ActionRead},
	{string(RoleEmployee), ResourceProfile, ActionRead},
	{string(RoleEmployee), ResourceProfile, ActionUpdate},
}

// Service is the single policy check point for every operation. Route
// middleware consults it before any data access happens.
type Service interface {
	Can(p Principal, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("authz.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authz.service")
	}

	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, rule := range rolePolicy {
		if _, err := enforcer.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Can(p Principal, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(string(p.Role), resource, action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("role", string(p.Role)),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("role", string(p.Role)),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
