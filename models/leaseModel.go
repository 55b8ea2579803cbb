package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LeaseStatusActive    = "active"
	LeaseStatusCompleted = "completed"
	LeaseStatusDefaulted = "defaulted"
)

// LeaseAgreement is one financed order. OrderID is nullable: past customers
// backfilled by an admin carry a lease with no originating order.
type LeaseAgreement struct {
	gorm.Model
	CustomerID       uint       `json:"customerId" gorm:"index"`
	OrderID          *uint      `json:"orderId"`
	Order            *Order     `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	TotalAmount      float64    `json:"totalAmount"`
	MonthlyAmount    float64    `json:"monthlyAmount"`
	RemainingBalance float64    `json:"remainingBalance"`
	NextPaymentDate  *time.Time `json:"nextPaymentDate"`
	Status           string     `json:"status" gorm:"default:active"`
	IsSettled        bool       `json:"isSettled"`
}

// LeasePayment records a payment against a specific agreement. No write path
// exists today: the admin record-payment flow adjusts only the profile-level
// aggregate balance, so this table stays read-only until that is reconciled.
type LeasePayment struct {
	gorm.Model
	LeaseAgreementID uint      `json:"leaseAgreementId" gorm:"index"`
	Amount           float64   `json:"amount"`
	PaymentDate      time.Time `json:"paymentDate"`
	PaymentMethod    string    `json:"paymentMethod"`
	Notes            string    `json:"notes"`
}
