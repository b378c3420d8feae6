package models

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:128" json:"id" firestore:"-"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email" firestore:"email"`
	PasswordHash string `gorm:"size:255" json:"-" firestore:"passwordHash,omitempty"`
	Name         string `gorm:"size:100;not null" json:"name" firestore:"name"`
	Phone        string `gorm:"size:20" json:"phone" firestore:"phone"`
	Role         string `gorm:"size:20;default:'customer'" json:"role" firestore:"role"`
	PhotoURL     string `gorm:"size:255" json:"photo_url" firestore:"photoUrl"`

	// Barber profile
	Bio               string          `gorm:"type:text" json:"bio,omitempty" firestore:"bio"`
	Specialties       []string        `gorm:"serializer:json" json:"specialties,omitempty" firestore:"specialties"`
	YearsOfExperience int             `json:"years_of_experience,omitempty" firestore:"yearsOfExperience"`
	Availability      string          `gorm:"type:text" json:"availability,omitempty" firestore:"availability"`
	Services          []BarberService `gorm:"serializer:json" json:"services,omitempty" firestore:"services"`

	SubscriptionActive bool   `gorm:"default:false" json:"subscription_active" firestore:"subscriptionActive"`
	SubscriptionID     string `gorm:"size:64" json:"-" firestore:"subscriptionId"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// BarberService is a priced offering listed on a barber profile.
type BarberService struct {
	Name            string  `json:"name" firestore:"name"`
	Price           float64 `json:"price" firestore:"price"`
	DurationMinutes int     `json:"duration_minutes" firestore:"durationMinutes"`
}
