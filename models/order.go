package models

import "time"

// Payment methods
const (
	PaymentCOD        = "COD"
	PaymentUPI        = "UPI"
	PaymentDebitCard  = "DEBIT_CARD"
	PaymentCreditCard = "CREDIT_CARD"
	PaymentNetBanking = "NET_BANKING"
)

var paymentMethods = map[string]bool{
	PaymentCOD:        true,
	PaymentUPI:        true,
	PaymentDebitCard:  true,
	PaymentCreditCard: true,
	PaymentNetBanking: true,
}

func ValidPaymentMethod(method string) bool {
	return paymentMethods[method]
}

// Payment statuses
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// Order statuses. paymentStatus and orderStatus are independent axes and are
// never reconciled with each other.
const (
	OrderPlaced    = "Placed"
	OrderConfirmed = "Confirmed"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

var paymentStatuses = map[string]bool{
	PaymentPending: true,
	PaymentPaid:    true,
	PaymentFailed:  true,
}

var orderStatuses = map[string]bool{
	OrderPlaced:    true,
	OrderConfirmed: true,
	OrderShipped:   true,
	OrderDelivered: true,
	OrderCancelled: true,
}

func ValidPaymentStatus(s string) bool { return paymentStatuses[s] }
func ValidOrderStatus(s string) bool   { return orderStatuses[s] }

// DeliveryAddress must be complete; country defaults to India.
type DeliveryAddress struct {
	FullName    string `bson:"fullname" json:"fullName" validate:"required"`
	PhoneNumber string `bson:"phonenumber" json:"phoneNumber" validate:"required"`
	Address     string `bson:"address" json:"address" validate:"required"`
	City        string `bson:"city" json:"city" validate:"required"`
	State       string `bson:"state" json:"state" validate:"required"`
	Pincode     string `bson:"pincode" json:"pincode" validate:"required"`
	Country     string `bson:"country" json:"country"`
}

// OrderLine snapshots the product at purchase time so historical orders stay
// stable when the live product changes.
type OrderLine struct {
	ProductID   string   `bson:"productid" json:"productId"`
	ProductName string   `bson:"productname" json:"productName"`
	Quantity    int      `bson:"quantity" json:"quantity"`
	Price       float64  `bson:"price" json:"price"`
	Images      []string `bson:"images" json:"images"`
}

type Order struct {
	OrderID           string          `bson:"orderid" json:"orderid"`
	BuyerID           string          `bson:"buyerid" json:"buyerId"`
	Products          []OrderLine     `bson:"products" json:"products"`
	TotalAmount       float64         `bson:"totalamount" json:"totalAmount"`
	DeliveryAddress   DeliveryAddress `bson:"deliveryaddress" json:"deliveryAddress"`
	PaymentMethod     string          `bson:"paymentmethod" json:"paymentMethod"`
	PaymentStatus     string          `bson:"paymentstatus" json:"paymentStatus"`
	OrderStatus       string          `bson:"orderstatus" json:"orderStatus"`
	RazorpayOrderID   string          `bson:"razorpayorderid,omitempty" json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string          `bson:"razorpaypaymentid,omitempty" json:"razorpayPaymentId,omitempty"`
	Notes             string          `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time       `bson:"createdat" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedat" json:"updatedAt"`
}

// CanCancel is false once the order has left the warehouse.
func (o *Order) CanCancel() bool {
	return o.OrderStatus != OrderShipped && o.OrderStatus != OrderDelivered
}

// Total recomputes the order total from its line snapshots.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.Products {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
