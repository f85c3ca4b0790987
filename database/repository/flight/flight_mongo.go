package flightRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voyago/database"
	"voyago/models"
	"voyago/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const flightCachePrefix = "flights:"
const flightCacheTTL = 5 * time.Minute

// MongoFlightRepo implements FlightRepository using MongoDB, with a Redis
// read-through cache in front of route/date searches.
type MongoFlightRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoFlightRepo creates a new FlightRepository using MongoDB.
func NewMongoFlightRepo() FlightRepository {
	coll := database.MongoClient.Database("voyago").Collection("flights")
	repo := &MongoFlightRepo{coll: coll, cache: utils.GetCacheClient()}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("flight repo: failed to create indexes", zap.Error(err))
	}
	if err := repo.seedIfEmpty(); err != nil {
		utils.GetLogger().Warn("flight repo: failed to seed catalog", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFlightRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "origin", Value: 1}, {Key: "destination", Value: 1}, {Key: "departure_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Search finds flights with seats remaining on the given route and date.
// City names match case-insensitively (collation strength 2); results are
// ordered by cabin class and then ascending price.
func (r *MongoFlightRepo) Search(ctx context.Context, origin, destination, date string) ([]models.Flight, error) {
	cacheKey := fmt.Sprintf("%s%s:%s:%s", flightCachePrefix, origin, destination, date)
	if r.cache != nil {
		if data, err := r.cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []models.Flight
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	filter := bson.M{
		"origin":          origin,
		"destination":     destination,
		"departure_date":  date,
		"available_seats": bson.M{"$gt": 0},
	}
	opts := options.Find().
		SetCollation(&options.Collation{Locale: "en", Strength: 2}).
		SetSort(bson.D{{Key: "cabin_class", Value: 1}, {Key: "price", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search flights %s to %s on %s: %w", origin, destination, date, err)
	}
	defer cursor.Close(ctx)

	var flights []models.Flight
	for cursor.Next(ctx) {
		var f models.Flight
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode flight: %w", err)
		}
		flights = append(flights, f)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate flights: %w", err)
	}

	if r.cache != nil && len(flights) > 0 {
		if b, err := json.Marshal(flights); err == nil {
			_ = r.cache.Set(ctx, cacheKey, b, flightCacheTTL).Err()
		}
	}
	return flights, nil
}

// GetByID retrieves one flight by its numeric catalog id.
func (r *MongoFlightRepo) GetByID(ctx context.Context, id int) (*models.Flight, error) {
	var f models.Flight
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to fetch flight with id %d: %w", id, err)
	}
	return &f, nil
}

// CheckAvailability returns the seat counts for one flight.
func (r *MongoFlightRepo) CheckAvailability(ctx context.Context, id int) (*SeatAvailability, error) {
	f, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SeatAvailability{
		FlightNumber:   f.FlightNumber,
		Airline:        f.Airline,
		DepartureDate:  f.DepartureDate,
		DepartureTime:  f.DepartureTime,
		CabinClass:     f.CabinClass,
		TotalSeats:     f.TotalSeats,
		AvailableSeats: f.AvailableSeats,
	}, nil
}
