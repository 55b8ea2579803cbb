package models

import "gorm.io/gorm"

// User holds the login credentials. The phone number is the real identifier;
// Email is the synthetic "{phone}@{domain}" address derived from it.
type User struct {
	gorm.Model
	Phone    string `json:"phone" gorm:"uniqueIndex"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Profile is the customer-facing record. ApprovalStatus gates lease financing
// and OverallLeaseBalance is the aggregate outstanding amount across all of
// the customer's leases.
type Profile struct {
	gorm.Model
	UserID              uint    `json:"userId" gorm:"uniqueIndex"`
	FullName            string  `json:"fullName"`
	PhoneNumber         string  `json:"phoneNumber"`
	Address             string  `json:"address"`
	ApprovalStatus      string  `json:"approvalStatus" gorm:"default:pending"`
	OverallLeaseBalance float64 `json:"overallLeaseBalance"`
}

// UserRole is the authorization source of truth, kept separate from Profile.
type UserRole struct {
	gorm.Model
	UserID uint   `json:"userId" gorm:"index"`
	Role   string `json:"role"`
}

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"

	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type LoginData struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,min=10"`
	Password    string `json:"password" binding:"required,min=6"`
}

type SignupData struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,min=10"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"fullName" binding:"required,min=2"`
	Address     string `json:"address" binding:"required,min=5"`
}
