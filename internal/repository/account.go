package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studycards/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type accountRepository struct {
	collection *mongo.Collection
}

func newAccountRepository(db *mongo.Database) *accountRepository {
	return &accountRepository{
		collection: db.Collection("accounts"),
	}
}

func (r *accountRepository) EnsureIndexes(ctx context.Context) error {
	const op = "repository.account.EnsureIndexes"

	unique := options.Index().SetUnique(true)
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "login", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "userId", Value: -1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("%s: create indexes failed: %w", op, err)
	}

	return nil
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const op = "repository.account.Create"

	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt

	if _, err := r.collection.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("%s: insert account failed: %w", op, err)
	}

	return nil
}

// NextUserID returns one more than the current maximum userId, or 1 for an
// empty collection. Read-then-write; the unique index on userId backstops
// concurrent signups.
func (r *accountRepository) NextUserID(ctx context.Context) (int64, error) {
	const op = "repository.account.NextUserID"

	opts := options.FindOne().SetSort(bson.D{{Key: "userId", Value: -1}})

	var last domain.Account
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: find max userId failed: %w", op, err)
	}

	return last.UserID + 1, nil
}

func (r *accountRepository) GetByLogin(ctx context.Context, login string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"login": login})
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *accountRepository) GetByLoginOrEmail(ctx context.Context, login, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"login": login},
		bson.M{"email": email},
	}})
}

func (r *accountRepository) GetByLoginAndCode(ctx context.Context, login, code string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"login": login, "verificationCode": code})
}

func (r *accountRepository) GetByEmailAndResetCode(ctx context.Context, email, code string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email, "resetCode": code})
}

// MarkVerified flips the account to verified and removes the one-time code.
// Verification is terminal: nothing ever sets verified back to false.
func (r *accountRepository) MarkVerified(ctx context.Context, login string) error {
	const op = "repository.account.MarkVerified"

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"login": login},
		bson.M{
			"$set":   bson.M{"verified": true, "updatedAt": time.Now()},
			"$unset": bson.M{"verificationCode": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: update account failed: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// SetResetCode overwrites any pending reset unconditionally; only the most
// recent code is honored.
func (r *accountRepository) SetResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	const op = "repository.account.SetResetCode"

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"resetCode":          code,
			"resetCodeExpiresAt": expiresAt,
			"updatedAt":          time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("%s: update account failed: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ReplacePassword installs the new password hash and closes the reset cycle
// in a single document update.
func (r *accountRepository) ReplacePassword(ctx context.Context, email, passwordHash string) error {
	const op = "repository.account.ReplacePassword"

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":   bson.M{"passwordHash": passwordHash, "updatedAt": time.Now()},
			"$unset": bson.M{"resetCode": "", "resetCodeExpiresAt": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: update account failed: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *accountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var account domain.Account
	if err := r.collection.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find account failed: %w", err)
	}

	return &account, nil
}
