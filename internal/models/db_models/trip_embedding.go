package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// TripEmbedding stores a vector of the trip's preference text so similar
// past trips can be surfaced by cosine distance.
type TripEmbedding struct {
	TripID      string `gorm:"primaryKey;column:trip_id"`
	UserID      string `gorm:"index"`
	Destination string
	Preferences string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
