package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"voyago/database"
	"voyago/models"
	"voyago/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.MongoClient.Database("voyago").Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("session repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "updated_at", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Load fetches a session by id. A missing session is not an error.
func (r *MongoSessionRepo) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	if err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return &session, nil
}

// Save upserts the full session document. The creation timestamp survives
// updates; UpdatedAt is stamped on every save.
func (r *MongoSessionRepo) Save(ctx context.Context, session *models.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	session.UpdatedAt = time.Now()

	filter := bson.M{"session_id": session.SessionID}
	update := bson.M{
		"$set": bson.M{
			"messages":     session.Messages,
			"booking":      session.Booking,
			"last_results": session.LastResults,
			"query_type":   session.QueryType,
			"updated_at":   session.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"session_id": session.SessionID,
			"created_at": session.CreatedAt,
		},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.SessionID, err)
	}
	return nil
}

// Delete removes one session document.
func (r *MongoSessionRepo) Delete(ctx context.Context, sessionID string) (bool, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return false, fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return result.DeletedCount > 0, nil
}

// List returns a summary projection of every stored session, most recently
// updated first.
func (r *MongoSessionRepo) List(ctx context.Context) ([]models.SessionSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"session_id":    1,
			"created_at":    1,
			"updated_at":    1,
			"booking_stage": "$booking.stage",
			"message_count": bson.M{"$size": bson.M{"$ifNull": bson.A{"$messages", bson.A{}}}},
		}}},
		{{Key: "$sort", Value: bson.M{"updated_at": -1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.SessionSummary
	for cursor.Next(ctx) {
		var s models.SessionSummary
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode session summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, cursor.Err()
}

// CleanupOlderThan removes sessions whose last update is older than age.
func (r *MongoSessionRepo) CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	result, err := r.coll.DeleteMany(ctx, bson.M{"updated_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to clean up sessions older than %s: %w", age, err)
	}
	return result.DeletedCount, nil
}
