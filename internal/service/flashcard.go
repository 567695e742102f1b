package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/studycards/backend/internal/config"
	"github.com/studycards/backend/internal/domain"
	"github.com/studycards/backend/internal/repository"
	"github.com/studycards/backend/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	setsCacheKeyPrefix = "flashcard_sets:"
	setsCacheTTL       = 5 * time.Minute
)

type flashcardService struct {
	setRepository repository.FlashcardSets
	aiClient      Completer
	cache         redis.UniversalClient
	aiConfig      config.AIConfig
}

func newFlashcardService(setRepository repository.FlashcardSets,
	aiClient Completer,
	cache redis.UniversalClient,
	aiConfig config.AIConfig,
) *flashcardService {
	return &flashcardService{
		setRepository: setRepository,
		aiClient:      aiClient,
		cache:         cache,
		aiConfig:      aiConfig,
	}
}

const flashcardSystemPrompt = `You are a study assistant that writes flashcards.
Respond with a JSON array only, no prose and no code fences. Each element must
be an object with exactly two string fields: "question" and "answer".`

const testSystemPrompt = `You are a study assistant that writes multiple-choice tests.
Respond with a JSON array only, no prose and no code fences. Each element must
be an object with fields: "question" (string), "options" (array of exactly 4
strings), "correctAnswer" (index 0-3 into options) and "explanation" (string).`

// Generate asks the AI collaborator for a deck on topic and persists it as a
// new set for the user.
func (s *flashcardService) Generate(ctx context.Context, userID int64, topic string) ([]domain.Flashcard, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, errors.New("empty topic")
	}

	userPrompt := fmt.Sprintf("Write %d flashcards that teach the topic: %s", s.aiConfig.CardCount, topic)

	raw, err := s.aiClient.Complete(ctx, flashcardSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("ai completion failed: %w", err)
	}

	var flashcards []domain.Flashcard
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &flashcards); err != nil {
		return nil, fmt.Errorf("parse generated flashcards failed: %w", err)
	}
	if len(flashcards) == 0 {
		return nil, errors.New("ai returned no flashcards")
	}
	for i, card := range flashcards {
		if card.Question == "" || card.Answer == "" {
			return nil, fmt.Errorf("generated flashcard %d is incomplete", i)
		}
	}

	set := &domain.FlashcardSet{
		UserID:     userID,
		Topic:      topic,
		Flashcards: flashcards,
	}
	if err := s.setRepository.Create(ctx, set); err != nil {
		return nil, fmt.Errorf("store flashcard set failed: %w", err)
	}

	s.invalidateSetsCache(ctx, userID)

	return flashcards, nil
}

// GetSets lists the user's sets newest first, through a short-lived
// cache-aside entry.
func (s *flashcardService) GetSets(ctx context.Context, userID int64) ([]domain.FlashcardSet, error) {
	key := setsCacheKey(userID)

	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var sets []domain.FlashcardSet
		if err := json.Unmarshal([]byte(cached), &sets); err == nil {
			return sets, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("flashcard sets cache read failed", zap.Error(err))
	}

	sets, err := s.setRepository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get flashcard sets failed: %w", err)
	}

	if payload, err := json.Marshal(sets); err == nil {
		if err := s.cache.Set(ctx, key, payload, setsCacheTTL).Err(); err != nil {
			logger.Warn("flashcard sets cache write failed", zap.Error(err))
		}
	}

	return sets, nil
}

// GenerateTest builds a multiple-choice test from the cards of one set.
func (s *flashcardService) GenerateTest(ctx context.Context, userID int64, setID primitive.ObjectID) ([]domain.TestQuestion, error) {
	set, err := s.setRepository.GetOneByID(ctx, setID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get flashcard set failed: %w", err)
	}

	cards, err := json.Marshal(set.Flashcards)
	if err != nil {
		return nil, fmt.Errorf("marshal flashcards failed: %w", err)
	}

	userPrompt := fmt.Sprintf("Write one multiple-choice question per flashcard in this deck about %q:\n%s",
		set.Topic, cards)

	raw, err := s.aiClient.Complete(ctx, testSystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("ai completion failed: %w", err)
	}

	var questions []domain.TestQuestion
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &questions); err != nil {
		return nil, fmt.Errorf("parse generated test failed: %w", err)
	}
	if len(questions) == 0 {
		return nil, errors.New("ai returned no questions")
	}
	for i, q := range questions {
		if q.Question == "" || len(q.Options) != 4 || q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			return nil, fmt.Errorf("generated question %d is malformed", i)
		}
	}

	return questions, nil
}

// StoreTestScore records a finished run; highestScore only ever goes up.
func (s *flashcardService) StoreTestScore(ctx context.Context, result domain.TestResult) error {
	if result.Score < 0 || result.Score > 100 {
		return fmt.Errorf("score %d out of range", result.Score)
	}

	err := s.setRepository.RaiseHighestScore(ctx, result.SetID, result.UserID, result.Score)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrSetNotFound
	}
	if err != nil {
		return fmt.Errorf("store test score failed: %w", err)
	}

	s.invalidateSetsCache(ctx, result.UserID)

	return nil
}

func (s *flashcardService) DeleteSet(ctx context.Context, userID int64, setID primitive.ObjectID) error {
	err := s.setRepository.Delete(ctx, setID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrSetNotFound
	}
	if err != nil {
		return fmt.Errorf("delete flashcard set failed: %w", err)
	}

	s.invalidateSetsCache(ctx, userID)

	return nil
}

func (s *flashcardService) invalidateSetsCache(ctx context.Context, userID int64) {
	if err := s.cache.Del(ctx, setsCacheKey(userID)).Err(); err != nil {
		logger.Warn("flashcard sets cache invalidation failed", zap.Error(err))
	}
}

func setsCacheKey(userID int64) string {
	return fmt.Sprintf("%s%d", setsCacheKeyPrefix, userID)
}

// stripCodeFences tolerates models that wrap JSON in markdown fences despite
// the prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
