package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studycards/backend/internal/domain"
	"github.com/studycards/backend/internal/repository"
)

type cardService struct {
	cardRepository repository.Cards
}

func newCardService(cardRepository repository.Cards) *cardService {
	return &cardService{
		cardRepository: cardRepository,
	}
}

func (s *cardService) Add(ctx context.Context, userID int64, card string) error {
	card = strings.TrimSpace(card)
	if card == "" {
		return errors.New("empty card")
	}

	if err := s.cardRepository.Create(ctx, &domain.Card{UserID: userID, Card: card}); err != nil {
		return fmt.Errorf("create card failed: %w", err)
	}

	return nil
}

// Search is scoped to the requesting user; the query is trimmed and matched
// as a case-insensitive prefix.
func (s *cardService) Search(ctx context.Context, userID int64, search string) ([]string, error) {
	results, err := s.cardRepository.SearchByPrefix(ctx, userID, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("search cards failed: %w", err)
	}

	return results, nil
}
