package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomOrder(t *testing.T) {
	o := NewCustomOrder(
		Contact{Name: "Arun", Email: "arun@example.com", Phone: "9840000000", Address: "Hostel B"},
		"Gesture Controlled Wheelchair", "Hardware", "Needs tilt sensing and a joystick fallback.", nil)

	assert.True(t, o.IsCustomOrder)
	assert.Empty(t, o.Items)
	assert.Equal(t, "Gesture Controlled Wheelchair", o.ProjectTitle)
	assert.Equal(t, StatusNotCompleted, o.Status)
	assert.Equal(t, DeliveryNotDelivered, o.DeliveryStatus)
	assert.Equal(t, PaymentUnpaid, o.PaymentStatus)
	assert.Equal(t, HandlerFeeNotSent, o.HandlerFeeStatus)
}

func TestNewCatalogOrder(t *testing.T) {
	items := []OrderItem{{ProjectID: 3, Title: "Weather Station", Price: 120}}
	o := NewCatalogOrder(Contact{Name: "Meena"}, items, 129.60, nil)

	assert.False(t, o.IsCustomOrder)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 129.60, o.Total)
	assert.Empty(t, o.ProjectTitle)
}

func TestAssignedNameSentinel(t *testing.T) {
	o := Order{}
	assert.Equal(t, NotAssigned, o.AssignedName())

	o.Assigned = &Employee{Name: "Kavya"}
	assert.Equal(t, "Kavya", o.AssignedName())
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryIoT, CategoryHardware, CategorySoftware, CategoryAI} {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("Robotics"))
	assert.False(t, ValidCategory(""))
}
