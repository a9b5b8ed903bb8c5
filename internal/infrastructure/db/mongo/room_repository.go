package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

const roomsCollection = "rooms"

type RoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{coll: db.Collection(roomsCollection)}
}

type mongoRoom struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Type          string             `bson:"type"`
	PricePerNight float64            `bson:"price_per_night"`
	Capacity      int                `bson:"capacity"`
	Description   string             `bson:"description,omitempty"`
	Amenities     []string           `bson:"amenities"`
	ImageURL      string             `bson:"image_url,omitempty"`
	IsActive      bool               `bson:"is_active"`
}

func (r *RoomRepository) Insert(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoRoom{
		Name:          room.Name,
		Type:          string(room.Type),
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
		Description:   room.Description,
		Amenities:     room.Amenities,
		ImageURL:      room.ImageURL,
		IsActive:      room.IsActive,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoRoom
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RoomRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Room, error) {
	out := make(map[string]*domain.Room, len(ids))
	oids := toObjectIDs(ids)
	if len(oids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var mr mongoRoom
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		room := mr.toDomain()
		out[room.ID] = room
	}
	return out, cur.Err()
}

// Search returns active rooms matching filter. Price bounds are inclusive.
func (r *RoomRepository) Search(ctx context.Context, filter ports.RoomSearchFilter) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_active": true}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price_per_night"] = price
	}

	opts := options.Find()
	if filter.SortPriceAsc {
		opts.SetSort(bson.D{{Key: "price_per_night", Value: 1}})
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	return r.decodeRooms(ctx, query, opts)
}

func (r *RoomRepository) ListAll(ctx context.Context) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.decodeRooms(ctx, bson.M{}, opts)
}

func (r *RoomRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"is_active": active}})
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// Delete removes the room document. Unknown ids are not an error: the end
// state is the same.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

func (r *RoomRepository) decodeRooms(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Room, error) {
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer cur.Close(ctx)

	var rooms []*domain.Room
	for cur.Next(ctx) {
		var mr mongoRoom
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		rooms = append(rooms, mr.toDomain())
	}
	return rooms, cur.Err()
}

func (mr *mongoRoom) toDomain() *domain.Room {
	return &domain.Room{
		ID:            mr.ID.Hex(),
		Name:          mr.Name,
		Type:          domain.RoomType(mr.Type),
		PricePerNight: mr.PricePerNight,
		Capacity:      mr.Capacity,
		Description:   mr.Description,
		Amenities:     mr.Amenities,
		ImageURL:      mr.ImageURL,
		IsActive:      mr.IsActive,
	}
}
