package models

import (
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusReady      OrderStatus = "READY"
	StatusPickedUp   OrderStatus = "PICKED_UP"
	StatusCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusReady ||
		s == StatusPickedUp || s == StatusCancelled
}

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "CASH"
	MethodCard   PaymentMethod = "CARD"
	MethodUPI    PaymentMethod = "UPI"
	MethodOthers PaymentMethod = "OTHERS"
)

func (m PaymentMethod) IsValid() bool {
	return m == MethodCash || m == MethodCard || m == MethodUPI || m == MethodOthers
}

type Customer struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	PhoneNumber string  `db:"phone_number" json:"phone_number"`
	Email       *string `db:"email" json:"email"`
	Audit
}

type MenuItem struct {
	ID          int     `db:"id" json:"id"`
	Active      bool    `db:"active" json:"active"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Audit
}

type Order struct {
	ID         int         `db:"id" json:"id"`
	CustomerID int         `db:"customer_id" json:"customer_id"`
	OrderDate  time.Time   `db:"order_date" json:"order_date"`
	Status     OrderStatus `db:"status" json:"status"`
	Audit
}

type OrderItem struct {
	ID         int `db:"id" json:"id"`
	OrderID    int `db:"order_id" json:"order_id"`
	MenuItemID int `db:"menu_item_id" json:"menu_item_id"`
	Quantity   int `db:"quantity" json:"quantity"`
	Audit
}

type PaymentTransaction struct {
	ID            int           `db:"id" json:"id"`
	OrderID       int           `db:"order_id" json:"order_id"`
	PaymentDate   time.Time     `db:"payment_date" json:"payment_date"`
	Amount        float64       `db:"amount" json:"amount"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"payment_method"`
	Paid          bool          `db:"paid" json:"paid"`
	Audit
}
