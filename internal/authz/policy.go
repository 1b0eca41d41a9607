package authz

import (
	"strings"
)

// Capability names one class of gated admin action.
type Capability string

const (
	CapManageOrders        Capability = "manage_orders"
	CapManageDelivery      Capability = "manage_delivery"
	CapManageCosts         Capability = "manage_costs"
	CapManagePayment       Capability = "manage_payment"
	CapAssignConsultants   Capability = "assign_consultants"
	CapManageMeetings      Capability = "manage_meetings"
	CapManageConsultations Capability = "manage_consultations"
	CapManageEmployees     Capability = "manage_employees"
	CapManageProjects      Capability = "manage_projects"
	CapManageFinancials    Capability = "manage_financials"
	CapManageSalaries      Capability = "manage_salaries"
	CapSuperAdmin          Capability = "super_admin"
)

// All capabilities, in display order.
var All = []Capability{
	CapManageOrders,
	CapManageDelivery,
	CapManageCosts,
	CapManagePayment,
	CapAssignConsultants,
	CapManageMeetings,
	CapManageConsultations,
	CapManageEmployees,
	CapManageProjects,
	CapManageFinancials,
	CapManageSalaries,
	CapSuperAdmin,
}

// Policy maps an email to capabilities through a role table: the roster binds
// emails to role names, roles hold capability sets, and the superadmin email
// holds everything unconditionally. Evaluation is pure and has no caching;
// callers re-evaluate on every request.
//
// Role names and emails are stored lowercase; lookups are exact matches
// against the stored form.
type Policy struct {
	superadmin string
	roles      map[string]map[Capability]bool
	users      map[string]string
}

func New(superadmin string, roles map[string][]string, users map[string]string) *Policy {
	p := &Policy{
		superadmin: strings.ToLower(superadmin),
		roles:      make(map[string]map[Capability]bool, len(roles)),
		users:      make(map[string]string, len(users)),
	}
	for name, caps := range roles {
		set := make(map[Capability]bool, len(caps))
		for _, c := range caps {
			set[Capability(strings.ToLower(c))] = true
		}
		p.roles[strings.ToLower(name)] = set
	}
	for email, role := range users {
		p.users[strings.ToLower(email)] = strings.ToLower(role)
	}
	return p
}

// Can reports whether the email holds the capability. Unknown emails hold
// nothing; the superadmin email holds everything.
func (p *Policy) Can(email string, cap Capability) bool {
	if email == "" {
		return false
	}
	if email == p.superadmin {
		return true
	}
	role, ok := p.users[email]
	if !ok {
		return false
	}
	return p.roles[role][cap]
}

// RoleOf returns the role bound to an email, "superadmin" for the superadmin
// identity, and "" for everyone else.
func (p *Policy) RoleOf(email string) string {
	if email != "" && email == p.superadmin {
		return "superadmin"
	}
	return p.users[email]
}

// Capabilities returns the full capability map for an email, for the login
// response the dashboard renders its navigation from.
func (p *Policy) Capabilities(email string) map[Capability]bool {
	out := make(map[Capability]bool, len(All))
	for _, c := range All {
		out[c] = p.Can(email, c)
	}
	return out
}
