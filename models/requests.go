package models

import (
	"time"
)

// Request schemas cover the fields a client may supply on create/update. Required
// fields are pointers so a missing key is distinguishable from a zero value.

type CustomerRequest struct {
	Name        *string `json:"name" validate:"required"`
	PhoneNumber *string `json:"phone_number" validate:"required"`
	Email       *string `json:"email"`
}

type MenuItemRequest struct {
	Active      *bool    `json:"active" validate:"required"`
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
}

type OrderRequest struct {
	CustomerID *int       `json:"customer_id" validate:"required"`
	OrderDate  *time.Time `json:"order_date"`
	Status     *string    `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS READY PICKED_UP CANCELLED"`
}

type OrderItemRequest struct {
	OrderID    *int `json:"order_id" validate:"required"`
	MenuItemID *int `json:"menu_item_id" validate:"required"`
	Quantity   *int `json:"quantity" validate:"required,gt=0"`
}

type PaymentRequest struct {
	OrderID       *int       `json:"order_id" validate:"required"`
	PaymentDate   *time.Time `json:"payment_date"`
	Amount        *float64   `json:"amount" validate:"required,gte=0"`
	PaymentMethod *string    `json:"payment_method" validate:"omitempty,oneof=CASH CARD UPI OTHERS"`
	Paid          *bool      `json:"paid" validate:"required"`
}

// FieldError is one entry of the error list returned on validation failure.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}
