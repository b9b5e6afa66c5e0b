package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashcards/internal/database"
)

func newTestDeckRepository(t *testing.T) *DeckRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "decks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	return NewDeckRepository(db)
}

func TestDeckRepository_SaveAndGet(t *testing.T) {
	repo := newTestDeckRepository(t)

	require.NoError(t, repo.SaveDeck("japanese", "Q,A\nApple,りんご\n", 1))

	deck, err := repo.GetDeckByName("japanese")
	require.NoError(t, err)
	require.NotNil(t, deck)
	assert.Equal(t, "japanese", deck.Name)
	assert.Equal(t, "Q,A\nApple,りんご\n", deck.Body)
	assert.Equal(t, 1, deck.CardCount)
	assert.False(t, deck.CreatedAt.IsZero())
}

func TestDeckRepository_SaveReplacesBody(t *testing.T) {
	repo := newTestDeckRepository(t)

	require.NoError(t, repo.SaveDeck("japanese", "Q,A\nApple,りんご\n", 1))
	require.NoError(t, repo.SaveDeck("japanese", "Q,A\nApple,りんご\nCat,ネコ\n", 2))

	deck, err := repo.GetDeckByName("japanese")
	require.NoError(t, err)
	require.NotNil(t, deck)
	assert.Equal(t, 2, deck.CardCount)

	decks, err := repo.ListDecks()
	require.NoError(t, err)
	assert.Len(t, decks, 1)
}

func TestDeckRepository_Missing(t *testing.T) {
	repo := newTestDeckRepository(t)

	deck, err := repo.GetDeckByName("nope")
	require.NoError(t, err)
	assert.Nil(t, deck)

	deleted, err := repo.DeleteDeck("nope")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeckRepository_ListAndDelete(t *testing.T) {
	repo := newTestDeckRepository(t)

	require.NoError(t, repo.SaveDeck("verbs", "Q,A\nto eat,食べる\n", 1))
	require.NoError(t, repo.SaveDeck("animals", "Q,A\nCat,ネコ\nDog,いぬ\n", 2))

	decks, err := repo.ListDecks()
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, "animals", decks[0].Name)
	assert.Equal(t, 2, decks[0].CardCount)
	assert.Empty(t, decks[0].Body)
	assert.Equal(t, "verbs", decks[1].Name)

	deleted, err := repo.DeleteDeck("verbs")
	require.NoError(t, err)
	assert.True(t, deleted)

	decks, err = repo.ListDecks()
	require.NoError(t, err)
	assert.Len(t, decks, 1)
}
