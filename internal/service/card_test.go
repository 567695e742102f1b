package service

import (
	"context"
	"strings"
	"testing"

	"github.com/studycards/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCardRepo struct {
	cards []*domain.Card
}

func (r *fakeCardRepo) Create(ctx context.Context, card *domain.Card) error {
	cp := *card
	r.cards = append(r.cards, &cp)
	return nil
}

func (r *fakeCardRepo) SearchByPrefix(ctx context.Context, userID int64, search string) ([]string, error) {
	var out []string
	for _, c := range r.cards {
		if c.UserID == userID && strings.HasPrefix(strings.ToLower(c.Card), strings.ToLower(search)) {
			out = append(out, c.Card)
		}
	}
	return out, nil
}

func TestCardAdd_TrimsAndStores(t *testing.T) {
	repo := &fakeCardRepo{}
	svc := newCardService(repo)

	err := svc.Add(context.Background(), 3, "  dog - an animal  ")
	require.NoError(t, err)

	require.Len(t, repo.cards, 1)
	assert.Equal(t, "dog - an animal", repo.cards[0].Card)
	assert.Equal(t, int64(3), repo.cards[0].UserID)
}

func TestCardAdd_RejectsBlankCard(t *testing.T) {
	repo := &fakeCardRepo{}
	svc := newCardService(repo)

	err := svc.Add(context.Background(), 3, "   ")
	assert.Error(t, err)
	assert.Empty(t, repo.cards)
}

func TestCardSearch_ScopedToUserAndTrimmed(t *testing.T) {
	repo := &fakeCardRepo{}
	svc := newCardService(repo)

	require.NoError(t, svc.Add(context.Background(), 3, "Dog - an animal"))
	require.NoError(t, svc.Add(context.Background(), 3, "Door - an opening"))
	require.NoError(t, svc.Add(context.Background(), 4, "Dot - a point"))

	results, err := svc.Search(context.Background(), 3, "  do ")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Dog - an animal", "Door - an opening"}, results)
}
