package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPolicy() *Policy {
	return New(
		"founder@campusbuild.in",
		map[string][]string{
			"operations": {"manage_orders", "manage_delivery"},
			"accounts":   {"manage_costs", "manage_payment", "manage_financials"},
			"hr":         {"manage_employees", "manage_salaries"},
		},
		map[string]string{
			"ops@campusbuild.in":      "operations",
			"accounts@campusbuild.in": "accounts",
			"hr@campusbuild.in":       "hr",
		},
	)
}

func TestUnknownEmailHoldsNothing(t *testing.T) {
	p := testPolicy()
	for _, c := range All {
		assert.False(t, p.Can("stranger@example.com", c), string(c))
		assert.False(t, p.Can("", c), string(c))
	}
}

func TestSuperadminHoldsEverything(t *testing.T) {
	p := testPolicy()
	for _, c := range All {
		assert.True(t, p.Can("founder@campusbuild.in", c), string(c))
	}
	assert.Equal(t, "superadmin", p.RoleOf("founder@campusbuild.in"))
}

func TestRoleCapabilities(t *testing.T) {
	p := testPolicy()

	assert.True(t, p.Can("ops@campusbuild.in", CapManageOrders))
	assert.True(t, p.Can("ops@campusbuild.in", CapManageDelivery))
	assert.False(t, p.Can("ops@campusbuild.in", CapManagePayment))
	assert.False(t, p.Can("ops@campusbuild.in", CapSuperAdmin))

	assert.True(t, p.Can("accounts@campusbuild.in", CapManageFinancials))
	assert.False(t, p.Can("accounts@campusbuild.in", CapManageOrders))
}

func TestComparisonIsExactAgainstStoredLowercase(t *testing.T) {
	p := testPolicy()
	// Lists are stored lowercase; a differently-cased input is a different
	// identity as far as the policy is concerned.
	assert.False(t, p.Can("Ops@campusbuild.in", CapManageOrders))
	assert.False(t, p.Can("FOUNDER@CAMPUSBUILD.IN", CapManageOrders))

	// Mixed-case config still normalizes to the same stored form.
	q := New("Founder@CampusBuild.in", map[string][]string{"Ops": {"MANAGE_ORDERS"}}, map[string]string{"OPS@campusbuild.in": "ops"})
	assert.True(t, q.Can("founder@campusbuild.in", CapManageSalaries))
	assert.True(t, q.Can("ops@campusbuild.in", CapManageOrders))
}

func TestCapabilitiesMapCoversAllCapabilities(t *testing.T) {
	p := testPolicy()
	caps := p.Capabilities("hr@campusbuild.in")
	assert.Len(t, caps, len(All))
	assert.True(t, caps[CapManageEmployees])
	assert.True(t, caps[CapManageSalaries])
	assert.False(t, caps[CapManageProjects])
	assert.False(t, caps[CapSuperAdmin])
}
