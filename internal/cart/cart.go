package cart

import (
	"errors"
	"math"
	"sync"
	"time"

	"campusbuild/internal/models"
)

// TaxRate applies to the cart subtotal at checkout time.
const TaxRate = 0.08

var ErrEmptyCart = errors.New("cart is empty")

// Item is one selected catalog project. Title and price are copied from the
// catalog at add time.
type Item struct {
	ProjectID uint    `json:"project_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
}

// Cart is one browsing session's selection. It lives in process memory only
// and is dropped when the session disappears; there is no persistence.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// Add appends the item unless a line with the same project id already exists.
// Returns false on the duplicate no-op.
func (c *Cart) Add(it Item) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.items {
		if existing.ProjectID == it.ProjectID {
			return false
		}
	}
	c.items = append(c.items, it)
	return true
}

// Remove filters out the line with the given project id. Removing an absent
// id is a no-op and returns false.
func (c *Cart) Remove(projectID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.ProjectID == projectID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Totals returns subtotal, taxes and total, each rounded to 2 decimals.
func (c *Cart) Totals() (subtotal, taxes, total float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalsLocked()
}

func (c *Cart) totalsLocked() (subtotal, taxes, total float64) {
	for _, it := range c.items {
		subtotal += it.Price
	}
	subtotal = round2(subtotal)
	taxes = round2(subtotal * TaxRate)
	total = round2(subtotal + taxes)
	return subtotal, taxes, total
}

// Checkout converts the cart into a catalog order. The cart is left intact:
// the caller clears it only once the order has been accepted downstream, so a
// failed submission keeps the customer's selection.
func (c *Cart) Checkout(contact models.Contact, deadline *time.Time) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	items := make([]models.OrderItem, len(c.items))
	for i, it := range c.items {
		items[i] = models.OrderItem{
			ProjectID: it.ProjectID,
			Title:     it.Title,
			Price:     it.Price,
		}
	}

	_, _, total := c.totalsLocked()
	return models.NewCatalogOrder(contact, items, total, deadline), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Store holds per-session carts, keyed by the session id issued to the
// storefront. Carts are created on first touch.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// Drop removes a session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
