// Package access is the role hierarchy gate consulted by every order and
// work-session operation.
package access

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

var ranks = map[Role]int{
	RoleUser:    1,
	RoleManager: 2,
	RoleAdmin:   3,
}

// Rank returns 0 for unknown roles.
func (r Role) Rank() int {
	return ranks[r]
}

func (r Role) Valid() bool {
	return r.Rank() > 0
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.Rank() >= min.Rank()
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Session is the explicit authorization context of one request.
type Session struct {
	UserID      int
	PrimaryRole Role
	ActiveRole  Role
}

// Downgrade returns the active role a session may switch to. Upgrades above
// the primary role are refused.
func Downgrade(primary, requested Role) (Role, error) {
	if !primary.Valid() {
		return "", fmt.Errorf("unknown primary role %q", primary)
	}
	if !requested.Valid() {
		return "", fmt.Errorf("unknown role %q", requested)
	}
	if requested.Rank() > primary.Rank() {
		return "", fmt.Errorf("role %s is above primary role %s", requested, primary)
	}
	return requested, nil
}

type Action string

const (
	ActionCreateOrder        Action = "order.create"
	ActionViewOrder          Action = "order.view"
	ActionListAllOrders      Action = "order.list_all"
	ActionNominate           Action = "order.nominate"
	ActionAccept             Action = "order.accept"
	ActionStartWork          Action = "order.start"
	ActionLogWork            Action = "order.log_work"
	ActionSubmitWork         Action = "order.submit_work"
	ActionComplete           Action = "order.complete"
	ActionReset              Action = "order.reset"
	ActionForceReset         Action = "order.force_reset"
	ActionReopen             Action = "order.reopen"
	ActionDeleteOrder        Action = "order.delete"
	ActionEditSession        Action = "session.edit"
	ActionDeleteSession      Action = "session.delete"
	ActionForceDeleteSession Action = "session.force_delete"
	ActionManageRates        Action = "rates.manage"
	ActionViewRates          Action = "rates.view"
	ActionManageUsers        Action = "users.manage"
	ActionViewOwnStats       Action = "stats.own"
	ActionViewOrgStats       Action = "stats.organization"
	ActionViewAllStats       Action = "stats.all"
)

// Ownership describes how the acting user relates to the resource.
type Ownership int

const (
	OwnershipNone Ownership = iota
	OwnershipAssignee
)

type rule struct {
	minRole      Role
	assigneeMay  bool
	assigneeOnly bool
}

var policy = map[Action]rule{
	ActionCreateOrder:        {minRole: RoleManager},
	ActionViewOrder:          {minRole: RoleManager, assigneeMay: true},
	ActionListAllOrders:      {minRole: RoleManager},
	ActionNominate:           {minRole: RoleManager},
	ActionAccept:             {assigneeOnly: true},
	ActionStartWork:          {assigneeOnly: true},
	ActionLogWork:            {minRole: RoleManager, assigneeMay: true},
	ActionSubmitWork:         {minRole: RoleManager, assigneeMay: true},
	ActionComplete:           {minRole: RoleManager},
	ActionReset:              {minRole: RoleManager},
	ActionForceReset:         {minRole: RoleAdmin},
	ActionReopen:             {minRole: RoleAdmin},
	ActionDeleteOrder:        {minRole: RoleAdmin},
	ActionEditSession:        {minRole: RoleManager, assigneeMay: true},
	ActionDeleteSession:      {minRole: RoleManager, assigneeMay: true},
	ActionForceDeleteSession: {minRole: RoleAdmin},
	ActionManageRates:        {minRole: RoleAdmin},
	ActionViewRates:          {minRole: RoleManager, assigneeMay: true},
	ActionManageUsers:        {minRole: RoleAdmin},
	ActionViewOwnStats:       {minRole: RoleUser},
	ActionViewOrgStats:       {minRole: RoleManager},
	ActionViewAllStats:       {minRole: RoleAdmin},
}

// CanPerform is the single authorization decision. Unknown actions and
// unknown roles are always denied.
func CanPerform(activeRole Role, action Action, ownership Ownership) bool {
	r, ok := policy[action]
	if !ok || !activeRole.Valid() {
		return false
	}
	if r.assigneeOnly {
		return ownership == OwnershipAssignee
	}
	if r.assigneeMay && ownership == OwnershipAssignee {
		return true
	}
	return activeRole.AtLeast(r.minRole)
}

// Can evaluates CanPerform against the session's active role.
func (s Session) Can(action Action, ownership Ownership) bool {
	return CanPerform(s.ActiveRole, action, ownership)
}

// OwnershipOf reports OwnershipAssignee when the session user is the given engineer.
func (s Session) OwnershipOf(engineerID *int) Ownership {
	if engineerID != nil && *engineerID == s.UserID {
		return OwnershipAssignee
	}
	return OwnershipNone
}
