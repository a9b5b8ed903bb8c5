package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
)

const sessionsCollection = "sessions"

// SessionRepository persists browser sessions in their own collection. The
// session id is the document _id; a TTL index reaps expired documents, and
// lookups still check expiry explicitly so a not-yet-reaped session is never
// honoured.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID        string               `bson:"_id"`
	User      mongoSessionSnapshot `bson:"user"`
	CreatedAt time.Time            `bson:"created_at"`
	ExpiresAt time.Time            `bson:"expires_at"`
}

type mongoSessionSnapshot struct {
	UserID   string `bson:"user_id"`
	Email    string `bson:"email"`
	Username string `bson:"username"`
	IsAdmin  bool   `bson:"is_admin"`
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSession{
		ID: s.ID,
		User: mongoSessionSnapshot{
			UserID:   s.User.UserID,
			Email:    s.User.Email,
			Username: s.User.Username,
			IsAdmin:  s.User.IsAdmin,
		},
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSession
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &domain.Session{
		ID: ms.ID,
		User: domain.SessionSnapshot{
			UserID:   ms.User.UserID,
			Email:    ms.User.Email,
			Username: ms.User.Username,
			IsAdmin:  ms.User.IsAdmin,
		},
		CreatedAt: ms.CreatedAt,
		ExpiresAt: ms.ExpiresAt,
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// EnsureIndexes creates the TTL index that removes expired sessions.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}
