package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studycards/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type flashcardSetRepository struct {
	collection *mongo.Collection
}

func newFlashcardSetRepository(db *mongo.Database) *flashcardSetRepository {
	return &flashcardSetRepository{
		collection: db.Collection("flashcard_sets"),
	}
}

func (r *flashcardSetRepository) Create(ctx context.Context, set *domain.FlashcardSet) error {
	const op = "repository.flashcardSet.Create"

	set.CreatedAt = time.Now()
	set.CardCount = len(set.Flashcards)

	res, err := r.collection.InsertOne(ctx, set)
	if err != nil {
		return fmt.Errorf("%s: insert flashcard set failed: %w", op, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	set.ID = id

	return nil
}

func (r *flashcardSetRepository) GetByUser(ctx context.Context, userID int64) ([]domain.FlashcardSet, error) {
	const op = "repository.flashcardSet.GetByUser"

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find flashcard sets failed: %w", op, err)
	}
	defer cursor.Close(ctx)

	sets := make([]domain.FlashcardSet, 0)
	if err := cursor.All(ctx, &sets); err != nil {
		return nil, fmt.Errorf("%s: decode flashcard sets failed: %w", op, err)
	}

	return sets, nil
}

func (r *flashcardSetRepository) GetOneByID(ctx context.Context, id primitive.ObjectID, userID int64) (*domain.FlashcardSet, error) {
	const op = "repository.flashcardSet.GetOneByID"

	var set domain.FlashcardSet
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: find flashcard set failed: %w", op, err)
	}

	return &set, nil
}

// RaiseHighestScore lifts highestScore monotonically; a lower score never
// overwrites a better run.
func (r *flashcardSetRepository) RaiseHighestScore(ctx context.Context, id primitive.ObjectID, userID int64, score int) error {
	const op = "repository.flashcardSet.RaiseHighestScore"

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$max": bson.M{"highestScore": score}},
	)
	if err != nil {
		return fmt.Errorf("%s: update flashcard set failed: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *flashcardSetRepository) Delete(ctx context.Context, id primitive.ObjectID, userID int64) error {
	const op = "repository.flashcardSet.Delete"

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("%s: delete flashcard set failed: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}
