package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string
type PaymentMethod string

const (
	// Payment statuses. Orders start pending and are approved by an admin
	// once the payment is verified. Failed is reserved; nothing in the
	// current flow sets it.
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"

	// Payment methods.
	PaymentCash       PaymentMethod = "Cash"
	PaymentElectronic PaymentMethod = "Electronic"
)

// Order is an immutable record of a completed checkout. Customer fields are
// denormalized at order time, so later profile edits never rewrite history.
// FinalPrice is always TotalPrice + DeliveryFee.
type Order struct {
	ID               string        `gorm:"primaryKey" json:"id"`
	UserID           string        `gorm:"index" json:"user_id"`
	UserName         string        `json:"userName"`
	UserPhone        string        `json:"userPhone"`
	UserEmail        string        `json:"userEmail"`
	Items            []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice       int           `json:"total_price"`
	Discount         int           `json:"discount"`
	DeliveryArea     string        `json:"delivery_area"`
	DeliveryFee      int           `json:"delivery_fee"`
	FinalPrice       int           `json:"final_price"`
	PaymentMethod    PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`
	ElectronicWallet string        `json:"electronic_wallet,omitempty"`
	PaymentReference string        `json:"payment_reference"`
	PaymentStatus    PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt        time.Time     `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is the persisted form of a CartItem snapshot.
type OrderItem struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	OrderID      string `gorm:"index" json:"-"`
	ProductID    string `json:"id"`
	NameAR       string `json:"name_ar"`
	NameEN       string `json:"name_en"`
	Category     string `json:"category"`
	SubCategory  string `json:"sub_category,omitempty"`
	Price        int    `json:"price"`
	Stock        int    `json:"stock"`
	ImageURL     string `json:"image_url"`
	CartQuantity int    `json:"cartQuantity"`
}

// NewOrderItem snapshots a cart item into its persisted form.
func NewOrderItem(i CartItem) OrderItem {
	return OrderItem{
		ProductID:    i.ID,
		NameAR:       i.NameAR,
		NameEN:       i.NameEN,
		Category:     i.Category,
		SubCategory:  i.SubCategory,
		Price:        i.Price,
		Stock:        i.Stock,
		ImageURL:     i.ImageURL,
		CartQuantity: i.CartQuantity,
	}
}
