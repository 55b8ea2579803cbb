package models

import "gorm.io/gorm"

// CartItem is one line of a user's cart. Uniqueness of (product, size, color)
// per user is enforced by merge-on-add in the cart controller, not by a
// database constraint.
type CartItem struct {
	gorm.Model
	UserID    uint    `json:"userId" gorm:"index"`
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
}
