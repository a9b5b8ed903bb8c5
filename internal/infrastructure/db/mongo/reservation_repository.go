package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
)

const reservationsCollection = "reservations"

type ReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{coll: db.Collection(reservationsCollection)}
}

// mongoReservation keeps user_id and room_id as plain strings rather than
// ObjectIDs: references are not enforced after creation, and a reservation
// must stay decodable after its room is deleted.
type mongoReservation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	RoomID    string             `bson:"room_id"`
	CheckIn   time.Time          `bson:"check_in"`
	CheckOut  time.Time          `bson:"check_out"`
	Guests    int                `bson:"guests"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReservation{
		UserID:    res.UserID,
		RoomID:    res.RoomID,
		CheckIn:   res.CheckIn,
		CheckOut:  res.CheckOut,
		Guests:    res.Guests,
		CreatedAt: res.CreatedAt,
	}

	inserted, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	created := *res
	created.ID = inserted.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReservationRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*domain.Reservation, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReservationRepository) find(ctx context.Context, query bson.M) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Reservation
	for cur.Next(ctx) {
		var mr mongoReservation
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode reservation: %w", err)
		}
		out = append(out, &domain.Reservation{
			ID:        mr.ID.Hex(),
			UserID:    mr.UserID,
			RoomID:    mr.RoomID,
			CheckIn:   mr.CheckIn,
			CheckOut:  mr.CheckOut,
			Guests:    mr.Guests,
			CreatedAt: mr.CreatedAt,
		})
	}
	return out, cur.Err()
}

// EnsureIndexes creates the indexes backing per-user history and the
// newest-first sorts.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
