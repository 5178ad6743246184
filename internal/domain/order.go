package domain

import "time"

// Payment methods accepted at checkout. Methods are recorded on the
// order but never settled here.
const (
	PaymentCOD      = "COD"
	PaymentStripe   = "Stripe"
	PaymentRazorpay = "Razorpay"
)

// ValidPaymentMethod reports whether method belongs to the closed set.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCOD, PaymentStripe, PaymentRazorpay:
		return true
	}
	return false
}

// OrderLine is an independent copy of a cart line taken at order
// placement. Snapshot carries the product name and image captured at the
// same moment so the line still renders after a catalog deletion.
type OrderLine struct {
	ID           string                 `json:"id"`
	ProductID    string                 `json:"productId"`
	Quantity     int                    `json:"quantity"`
	SelectedSize string                 `json:"selectedSize,omitempty"`
	Price        float64                `json:"price"`
	Snapshot     map[string]interface{} `json:"snapshot,omitempty"`
	Product      *Product               `json:"product,omitempty"`
}

// Order is immutable once created. TotalAmount is the client-asserted
// total, stored verbatim.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	AddressID     string      `json:"addressId"`
	Items         []OrderLine `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
	PaymentStatus string      `json:"paymentStatus"`
	OrderStatus   string      `json:"orderStatus"`
	CreatedAt     time.Time   `json:"createdAt"`
	Address       *Address    `json:"address,omitempty"`
}
