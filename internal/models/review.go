package models

import "time"

type Review struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id" firestore:"-"`
	BookingID    string    `gorm:"size:36;uniqueIndex;not null" json:"booking_id" firestore:"bookingId"`
	CustomerID   string    `gorm:"size:128;not null" json:"customer_id" firestore:"customerId"`
	CustomerName string    `gorm:"size:100" json:"customer_name" firestore:"customerName"`
	BarberID     string    `gorm:"size:128;index;not null" json:"barber_id" firestore:"barberId"`
	Rating       int       `gorm:"not null" json:"rating" firestore:"rating"`
	Comment      string    `gorm:"type:text" json:"comment" firestore:"comment"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}
