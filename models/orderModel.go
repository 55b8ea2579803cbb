package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	PaymentTypeCash  = "cash"
	PaymentTypeLease = "lease"
)

type Order struct {
	gorm.Model
	Reference       string      `json:"reference" gorm:"uniqueIndex"`
	CustomerID      uint        `json:"customerId" gorm:"index"`
	OrderDate       time.Time   `json:"orderDate"`
	PaymentType     string      `json:"paymentType"`
	Status          string      `json:"status" gorm:"default:pending"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryAddress string      `json:"deliveryAddress"`
	OrderItems      []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem captures the unit price at order time so later product price
// changes do not rewrite order history.
type OrderItem struct {
	gorm.Model
	OrderID   uint     `json:"orderId" gorm:"index"`
	ProductID uint     `json:"productId"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
	Size      string   `json:"size"`
	Color     string   `json:"color"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// NextOrderStatuses is the allowed transition set: delivered and cancelled
// are terminal.
var NextOrderStatuses = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// CanTransitionOrderStatus reports whether an order may move from one status
// to another.
func CanTransitionOrderStatus(from, to string) bool {
	for _, allowed := range NextOrderStatuses[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
