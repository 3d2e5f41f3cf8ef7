package mindset

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyAffirmations(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{
		"I am allowed to rest and recharge.",
		"Every step, big or small, is progress.",
		"I release the need for perfection and embrace good enough.",
	}, DailyAffirmations(jan1))

	// day 11 wraps around the end of the list
	jan11 := time.Date(2024, time.January, 11, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{
		"I celebrate my efforts, not just my outcomes.",
		"My worth is not measured by my productivity.",
		"I am allowed to rest and recharge.",
	}, DailyAffirmations(jan11))
}

func TestLoginAffirmation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		assert.Contains(t, loginAffirmations, LoginAffirmation(r))
	}
	assert.Contains(t, loginAffirmations, LoginAffirmation(nil))
}

func TestJournal(t *testing.T) {
	j := NewJournal(kvstore.NewMemory())
	ctx := context.Background()

	text, err := j.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, j.Save(ctx, "a@example.com", "Grateful for small wins."))
	text, err = j.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Grateful for small wins.", text)

	other, err := j.Get(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Empty(t, other)
}
