package service

import (
	"context"

	"github.com/studycards/backend/internal/config"
	"github.com/studycards/backend/internal/domain"
	"github.com/studycards/backend/internal/repository"
	"github.com/studycards/backend/pkg/auth"
	"github.com/studycards/backend/pkg/hash"
	"github.com/studycards/backend/pkg/otp"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Services struct {
	Accounts   Accounts
	Cards      Cards
	Flashcards Flashcards
}

// EmailQueue hands verification and reset mails off to the delivery worker.
// Enqueue failures never fail a lifecycle operation.
type EmailQueue interface {
	EnqueueVerificationEmail(ctx context.Context, email, firstName, code string) error
	EnqueuePasswordResetEmail(ctx context.Context, email, firstName, code string) error
}

// Completer is the text-generation collaborator behind flashcard and test
// generation.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Deps struct {
	Config        *config.Config
	Hasher        hash.PasswordHasher
	TokenManager  auth.TokenManager
	CodeGenerator otp.Generator
	Repos         *repository.Repositories
	EmailQueue    EmailQueue
	AIClient      Completer
	Cache         redis.UniversalClient
}

func NewServices(deps Deps) *Services {
	return &Services{
		Accounts: newAccountService(deps.Repos.Accounts,
			deps.Repos.RefreshSessions,
			deps.Hasher,
			deps.TokenManager,
			deps.CodeGenerator,
			deps.EmailQueue,
			deps.Config.Auth,
		),
		Cards: newCardService(deps.Repos.Cards),
		Flashcards: newFlashcardService(deps.Repos.FlashcardSets,
			deps.AIClient,
			deps.Cache,
			deps.Config.AI,
		),
	}
}

type Accounts interface {
	SignUp(ctx context.Context, input SignUpInput) error
	Verify(ctx context.Context, login, verificationCode string) error
	SignIn(ctx context.Context, input SignInInput) (*AuthResult, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, resetCode, newPassword string) error
}

type Cards interface {
	Add(ctx context.Context, userID int64, card string) error
	Search(ctx context.Context, userID int64, search string) ([]string, error)
}

type Flashcards interface {
	Generate(ctx context.Context, userID int64, topic string) ([]domain.Flashcard, error)
	GetSets(ctx context.Context, userID int64) ([]domain.FlashcardSet, error)
	GenerateTest(ctx context.Context, userID int64, setID primitive.ObjectID) ([]domain.TestQuestion, error)
	StoreTestScore(ctx context.Context, result domain.TestResult) error
	DeleteSet(ctx context.Context, userID int64, setID primitive.ObjectID) error
}
