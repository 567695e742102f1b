package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/studycards/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type cardRepository struct {
	collection *mongo.Collection
}

func newCardRepository(db *mongo.Database) *cardRepository {
	return &cardRepository{
		collection: db.Collection("cards"),
	}
}

func (r *cardRepository) Create(ctx context.Context, card *domain.Card) error {
	const op = "repository.card.Create"

	card.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, card); err != nil {
		return fmt.Errorf("%s: insert card failed: %w", op, err)
	}

	return nil
}

// SearchByPrefix returns the card texts of one user matching a
// case-insensitive prefix.
func (r *cardRepository) SearchByPrefix(ctx context.Context, userID int64, search string) ([]string, error) {
	const op = "repository.card.SearchByPrefix"

	filter := bson.M{
		"userId": userID,
		"card": bson.M{
			"$regex": primitive.Regex{Pattern: "^" + regexQuoteMeta(search), Options: "i"},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: find cards failed: %w", op, err)
	}
	defer cursor.Close(ctx)

	results := make([]string, 0)
	for cursor.Next(ctx) {
		var card domain.Card
		if err := cursor.Decode(&card); err != nil {
			return nil, fmt.Errorf("%s: decode card failed: %w", op, err)
		}
		results = append(results, card.Card)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor failed: %w", op, err)
	}

	return results, nil
}

// regexQuoteMeta escapes regex metacharacters so user input is matched
// literally.
func regexQuoteMeta(s string) string {
	const meta = `\.+*?()|[]{}^$`

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(meta); j++ {
			if s[i] == meta[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}

	return string(out)
}
