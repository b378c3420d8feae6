package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id" firestore:"-"`

	CustomerID   string `gorm:"size:128;index;not null" json:"customer_id" firestore:"customerId"`
	CustomerName string `gorm:"size:100" json:"customer_name" firestore:"customerName"`
	BarberID     string `gorm:"size:128;index;not null" json:"barber_id" firestore:"barberId"`
	BarberName   string `gorm:"size:100" json:"barber_name" firestore:"barberName"`

	AppointmentAt time.Time `json:"appointment_at" firestore:"appointmentAt"`
	Time          string    `gorm:"size:5" json:"time" firestore:"time"`

	Style           string   `gorm:"type:text" json:"style,omitempty" firestore:"style"`
	ServiceName     string   `gorm:"size:100" json:"service_name,omitempty" firestore:"serviceName"`
	ServicePrice    *float64 `json:"service_price" firestore:"servicePrice"`
	ServiceDuration *int     `json:"service_duration,omitempty" firestore:"serviceDuration"`

	ProposedPriceByBarber *float64 `json:"proposed_price_by_barber" firestore:"proposedPriceByBarber"`

	Status string `gorm:"size:32;index" json:"status" firestore:"status"`
	Notes  string `gorm:"size:255" json:"notes,omitempty" firestore:"notes"`

	Version int64 `gorm:"not null;default:1" json:"version" firestore:"version"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
