package models

import "time"

// BookedActivity is the immutable snapshot of one cart line at payment time.
type BookedActivity struct {
	ActivityID string  `bson:"activity_id" json:"activityId"`
	Title      string  `bson:"title" json:"title"`
	Date       string  `bson:"date" json:"date"`
	Time       string  `bson:"time" json:"time"`
	Price      float64 `bson:"price" json:"price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
}

// Booking is an append-only record of a completed purchase. It is created
// exactly once per verified payment and never updated afterwards.
type Booking struct {
	ID            string           `bson:"id" json:"id"`
	UserID        string           `bson:"user_id" json:"userId"`
	UserEmail     string           `bson:"user_email" json:"userEmail"`
	Activities    []BookedActivity `bson:"activities" json:"activities"`
	TotalAmount   float64          `bson:"total_amount" json:"totalAmount"`
	PaymentID     string           `bson:"payment_id" json:"paymentId"`
	OrderID       string           `bson:"order_id" json:"orderId"`
	PaymentStatus string           `bson:"payment_status" json:"paymentStatus"`
	CreatedAt     time.Time        `bson:"created_at" json:"created_at"`
}

// PaymentStatusSuccess is the only status a persisted booking carries:
// bookings are written after the gateway signature has been verified.
const PaymentStatusSuccess = "success"
