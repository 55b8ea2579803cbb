package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" gorm:"uniqueIndex" binding:"required"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}

// Product carries two prices: CashPrice is the one-time purchase price and
// LeasePrice is an informational monthly figure shown on the product page.
// The actual lease schedule is computed at checkout from the cart total.
type Product struct {
	gorm.Model
	Name          string         `json:"name" binding:"required"`
	Description   string         `json:"description"`
	CashPrice     float64        `json:"cashPrice" binding:"required,gt=0"`
	LeasePrice    float64        `json:"leasePrice"`
	Images        datatypes.JSON `json:"images"`
	Sizes         datatypes.JSON `json:"sizes"`
	Colors        datatypes.JSON `json:"colors"`
	StockQuantity int            `json:"stockQuantity" binding:"gte=0"`
	CategoryID    *uint          `json:"categoryId"`
	Category      *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsActive      bool           `json:"isActive" gorm:"default:true"`
}
