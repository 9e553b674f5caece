package domain

import "time"

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPrepared OrderStatus = "prepared"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// IsValid returns true for statuses of the closed set
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPrepared, OrderStatusApproved, OrderStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo returns true if the order may move to target.
// Only pending orders change status; re-applying the current status is allowed.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if target == OrderStatusPending || !target.IsValid() {
		return false
	}
	return s == OrderStatusPending || s == target
}

// OrderAction caller-driven status transition
type OrderAction string

const (
	OrderActionPrepare OrderAction = "prepare"
	OrderActionApprove OrderAction = "approve"
	OrderActionReject  OrderAction = "reject"
)

// TargetStatus returns the status an action moves the order to
func (a OrderAction) TargetStatus() (OrderStatus, bool) {
	switch a {
	case OrderActionPrepare:
		return OrderStatusPrepared, true
	case OrderActionApprove:
		return OrderStatusApproved, true
	case OrderActionReject:
		return OrderStatusRejected, true
	}
	return "", false
}

// Order represents an order header with its items
type Order struct {
	ID            int64
	CustomerName  string
	PhoneNumber   *string
	OrderNumber   string
	PaymentMethod string
	TotalAmount   float64
	Status        OrderStatus
	OrderDate     time.Time
	Source        string
	Note          *string

	Items []OrderItem
}

// OrderItem line item of an order
type OrderItem struct {
	ID       int64
	OrderID  int64
	ItemName string
	Quantity int
	Price    float64
}
