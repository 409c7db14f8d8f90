package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDelivery
}

type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Status  bool   `json:"status"`
}

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusAssigned       OrderStatus = "assigned"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// statusRank orders the delivery lifecycle. Transitions only move forward.
var statusRank = map[OrderStatus]int{
	StatusPending:        0,
	StatusAssigned:       1,
	StatusOutForDelivery: 2,
	StatusDelivered:      3,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Next returns the only legal follow-up status. UI code must offer exactly
// this transition; the server is the final authority.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusAssigned, true
	case StatusAssigned:
		return StatusOutForDelivery, true
	case StatusOutForDelivery:
		return StatusDelivered, true
	default:
		return "", false
	}
}

// CanTransition reports whether moving from s to target advances the
// lifecycle by exactly one step.
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

type Order struct {
	ID           string      `json:"_id"`
	OrderNumber  string      `json:"orderNumber"`
	CustomerName string      `json:"customerName"`
	Address      string      `json:"address"`
	DeliveryTime string      `json:"deliveryTime"`
	Status       OrderStatus `json:"status"`
	DeliveryID   string      `json:"deliveryId,omitempty"`
}

type Courier struct {
	ID                  string  `json:"_id"`
	Name                string  `json:"name"`
	Surname             string  `json:"surname"`
	Activo              bool    `json:"activo"`
	Rating              float64 `json:"rating"`
	CompletedDeliveries int     `json:"completedDeliveries"`
}

// OrderForm carries the create-order payload. Field validation (order
// number, customer contact formats) is the caller's concern.
type OrderForm struct {
	OrderNumber   string `json:"orderNumber"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Address       string `json:"address"`
	DeliveryTime  string `json:"deliveryTime,omitempty"`
}
