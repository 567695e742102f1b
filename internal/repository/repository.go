package repository

import (
	"context"
	"time"

	"github.com/studycards/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repositories struct {
	Accounts        Accounts
	Cards           Cards
	FlashcardSets   FlashcardSets
	RefreshSessions RefreshSessions
}

func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Accounts:        newAccountRepository(db),
		Cards:           newCardRepository(db),
		FlashcardSets:   newFlashcardSetRepository(db),
		RefreshSessions: newRefreshSessionRepository(db),
	}
}

// EnsureIndexes creates the unique indexes the account invariants rely on.
// Called once at startup; the pre-flight duplicate checks in the service are
// only a fast path for friendly error messages.
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	return r.Accounts.EnsureIndexes(ctx)
}

type Accounts interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, account *domain.Account) error
	NextUserID(ctx context.Context) (int64, error)
	GetByLogin(ctx context.Context, login string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByLoginOrEmail(ctx context.Context, login, email string) (*domain.Account, error)
	GetByLoginAndCode(ctx context.Context, login, code string) (*domain.Account, error)
	MarkVerified(ctx context.Context, login string) error
	SetResetCode(ctx context.Context, email, code string, expiresAt time.Time) error
	GetByEmailAndResetCode(ctx context.Context, email, code string) (*domain.Account, error)
	ReplacePassword(ctx context.Context, email, passwordHash string) error
}

type Cards interface {
	Create(ctx context.Context, card *domain.Card) error
	SearchByPrefix(ctx context.Context, userID int64, search string) ([]string, error)
}

type FlashcardSets interface {
	Create(ctx context.Context, set *domain.FlashcardSet) error
	GetByUser(ctx context.Context, userID int64) ([]domain.FlashcardSet, error)
	GetOneByID(ctx context.Context, id primitive.ObjectID, userID int64) (*domain.FlashcardSet, error)
	RaiseHighestScore(ctx context.Context, id primitive.ObjectID, userID int64, score int) error
	Delete(ctx context.Context, id primitive.ObjectID, userID int64) error
}

type RefreshSessions interface {
	Create(ctx context.Context, session *domain.RefreshSession) error
	GetByToken(ctx context.Context, refreshToken string) (*domain.RefreshSession, error)
	DeleteByToken(ctx context.Context, refreshToken string) error
}
