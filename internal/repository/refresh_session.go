package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studycards/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type refreshSessionRepository struct {
	collection *mongo.Collection
}

func newRefreshSessionRepository(db *mongo.Database) *refreshSessionRepository {
	return &refreshSessionRepository{
		collection: db.Collection("refresh_sessions"),
	}
}

func (r *refreshSessionRepository) Create(ctx context.Context, session *domain.RefreshSession) error {
	const op = "repository.refreshSession.Create"

	session.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("%s: insert refresh session failed: %w", op, err)
	}

	return nil
}

func (r *refreshSessionRepository) GetByToken(ctx context.Context, refreshToken string) (*domain.RefreshSession, error) {
	const op = "repository.refreshSession.GetByToken"

	var session domain.RefreshSession
	err := r.collection.FindOne(ctx, bson.M{"refreshToken": refreshToken}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: find refresh session failed: %w", op, err)
	}

	return &session, nil
}

func (r *refreshSessionRepository) DeleteByToken(ctx context.Context, refreshToken string) error {
	const op = "repository.refreshSession.DeleteByToken"

	res, err := r.collection.DeleteOne(ctx, bson.M{"refreshToken": refreshToken})
	if err != nil {
		return fmt.Errorf("%s: delete refresh session failed: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}
