package db_models

import (
	"time"
)

// Trip status values: pending, completed, failed.
type Trip struct {
	BaseModel
	UserID              string `gorm:"index"` // external auth subject
	Destination         string
	StartDate           time.Time
	EndDate             time.Time
	ArrivalTime         string
	DepartureTime       string
	DietaryPreferences  string
	ActivityPreferences string
	AdditionalNotes     string
	Status              string `gorm:"default:'pending'"`
	IsPublished         bool   `gorm:"default:true"`
	IsFavorite          bool   `gorm:"default:false"`

	Itineraries []Itinerary
}
