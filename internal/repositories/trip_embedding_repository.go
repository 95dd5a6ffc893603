package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "tripplanner/internal/models/db_models"
)

// TripEmbeddingRepository has no delete method. Embedding rows are removed
// inside the trip deletion transaction in TripRepository.
type TripEmbeddingRepository interface {
	UpsertTripEmbedding(ctx context.Context, embedding *dbm.TripEmbedding) error
	GetSimilarTrips(ctx context.Context, vector pgvector.Vector, excludeTripID string, limit int) ([]dbm.TripEmbedding, error)
}

type tripEmbeddingRepository struct {
	db *gorm.DB
}

func NewTripEmbeddingRepository(db *gorm.DB) TripEmbeddingRepository {
	return &tripEmbeddingRepository{db: db}
}

func (r *tripEmbeddingRepository) UpsertTripEmbedding(ctx context.Context, embedding *dbm.TripEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}},
			UpdateAll: true,
		}).
		Create(embedding).Error
}

func (r *tripEmbeddingRepository) GetSimilarTrips(ctx context.Context, vector pgvector.Vector, excludeTripID string, limit int) ([]dbm.TripEmbedding, error) {
	var results []dbm.TripEmbedding

	if limit <= 0 {
		limit = 5
	}
	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM trip_embeddings
        WHERE trip_id <> $2
          AND (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, vecStr, excludeTripID, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
