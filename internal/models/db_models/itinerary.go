package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Itinerary holds one parsed day of a trip. The jsonb columns carry the
// canonical parsed structures; RawResponse keeps the model output for
// diagnostics and regeneration.
type Itinerary struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index"`
	DayNumber int
	Date      time.Time

	Plan           datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Accommodations datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	TravelTips     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	RawResponse    string
}
