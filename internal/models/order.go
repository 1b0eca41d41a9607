package models

import (
	"time"
)

// Status values for the independent order axes. Each axis is edited on its
// own; cross-axis ordering is intentionally not enforced.
const (
	StatusCompleted    = "Completed"
	StatusNotCompleted = "Not Completed"

	DeliveryDelivered    = "Delivered"
	DeliveryNotDelivered = "Not Delivered"

	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"

	HandlerFeeSent    = "Sent"
	HandlerFeeNotSent = "Not Sent"
)

// NotAssigned is the display sentinel for orders with no linked handler.
const NotAssigned = "Not Assigned"

type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"size:50;unique;not null" json:"order_ref"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:150" json:"customer_email"`
	CustomerPhone string `gorm:"size:15" json:"customer_phone"`
	Address       string `gorm:"type:text" json:"address"`

	// Discriminator: catalog orders carry Items, custom orders carry the
	// free-text project fields.
	IsCustomOrder        bool        `json:"is_custom_order"`
	ProjectTitle         string      `gorm:"size:200" json:"project_title,omitempty"`
	Domain               string      `gorm:"size:100" json:"domain,omitempty"`
	DetailedRequirements string      `gorm:"type:text" json:"detailed_requirements,omitempty"`
	Items                []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	Total            float64 `gorm:"type:decimal(10,2);default:0.00" json:"total"`
	ComponentCost    float64 `gorm:"type:decimal(10,2);default:0.00" json:"component_cost"`
	HandlerFee       float64 `gorm:"type:decimal(10,2);default:0.00" json:"handler_fee"`
	HandlerFeeStatus string  `gorm:"size:20;default:'Not Sent'" json:"handler_fee_status"`

	Status         string `gorm:"size:20;default:'Not Completed'" json:"status"`
	DeliveryStatus string `gorm:"size:20;default:'Not Delivered'" json:"delivery_status"`
	PaymentStatus  string `gorm:"size:20;default:'Unpaid'" json:"payment_status"`

	// Handler is an employee reference, joined at read time. NULL means the
	// order is unassigned.
	AssignedID *uint     `json:"assigned_id"`
	Assigned   *Employee `gorm:"foreignKey:AssignedID" json:"assigned,omitempty"`

	Deadline  *time.Time `json:"deadline"`
	CreatedAt time.Time  `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `json:"order_id"`
	ProjectID uint    `json:"project_id"`
	Title     string  `gorm:"size:200" json:"title"`
	Price     float64 `gorm:"type:decimal(10,2)" json:"price"`
}

// Contact is the customer-supplied identity on orders and consultations.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// AssignedName resolves the handler's display name, falling back to the
// explicit sentinel when no employee is linked.
func (o *Order) AssignedName() string {
	if o.Assigned == nil {
		return NotAssigned
	}
	return o.Assigned.Name
}

// NewCatalogOrder builds an order from cart checkout. Items must already be
// priced; total includes taxes. The public ref is assigned at insert time.
func NewCatalogOrder(c Contact, items []OrderItem, total float64, deadline *time.Time) Order {
	return Order{
		CustomerName:     c.Name,
		CustomerEmail:    c.Email,
		CustomerPhone:    c.Phone,
		Address:          c.Address,
		IsCustomOrder:    false,
		Items:            items,
		Total:            total,
		HandlerFeeStatus: HandlerFeeNotSent,
		Status:           StatusNotCompleted,
		DeliveryStatus:   DeliveryNotDelivered,
		PaymentStatus:    PaymentUnpaid,
		Deadline:         deadline,
	}
}

// NewCustomOrder builds an order from the custom-project intake form. No item
// rows exist; pricing is entered later by the costs desk.
func NewCustomOrder(c Contact, title, domain, requirements string, deadline *time.Time) Order {
	return Order{
		CustomerName:         c.Name,
		CustomerEmail:        c.Email,
		CustomerPhone:        c.Phone,
		Address:              c.Address,
		IsCustomOrder:        true,
		ProjectTitle:         title,
		Domain:               domain,
		DetailedRequirements: requirements,
		HandlerFeeStatus:     HandlerFeeNotSent,
		Status:               StatusNotCompleted,
		DeliveryStatus:       DeliveryNotDelivered,
		PaymentStatus:        PaymentUnpaid,
		Deadline:             deadline,
	}
}
