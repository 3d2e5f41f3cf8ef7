// Package mindset keeps the private journal and picks affirmations.
package mindset

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/kvstore"
)

var affirmations = []string{
	"My worth is not measured by my productivity.",
	"I am allowed to rest and recharge.",
	"Every step, big or small, is progress.",
	"I release the need for perfection and embrace good enough.",
	"My journey is my own, and I honor my unique path.",
	"I am building a business that supports my soul.",
	"Clarity comes from action, not from overthinking.",
	"I trust my intuition to guide my decisions.",
	"It is safe for me to be seen and successful.",
	"I attract my ideal community by being my authentic self.",
	"Rest is a vital part of my growth strategy.",
	"I celebrate my efforts, not just my outcomes.",
}

var loginAffirmations = []string{
	"You’re not behind. You’re building roots.",
	"Consistency is quiet power.",
	"Small steps today build tall trees tomorrow.",
	"Your journey is unfolding perfectly.",
}

// DailyAffirmations returns three consecutive affirmations starting at the
// day of the year, wrapping around the list.
func DailyAffirmations(now time.Time) []string {
	start := now.YearDay() % len(affirmations)
	out := make([]string, 3)
	for i := range out {
		out[i] = affirmations[(start+i)%len(affirmations)]
	}
	return out
}

// LoginAffirmation picks one of the short sign-in affirmations.
func LoginAffirmation(r *rand.Rand) string {
	if r == nil {
		return loginAffirmations[rand.IntN(len(loginAffirmations))]
	}
	return loginAffirmations[r.IntN(len(loginAffirmations))]
}

// Journal stores one free-text entry per identity.
type Journal struct {
	kv kvstore.Store
}

func NewJournal(kv kvstore.Store) *Journal {
	return &Journal{kv: kv}
}

// Get returns the saved entry, or "" when nothing was written yet.
func (j *Journal) Get(ctx context.Context, id string) (string, error) {
	text, _, err := j.kv.Get(ctx, kvstore.JournalKey(id))
	if err != nil {
		return "", fmt.Errorf("read journal: %w", err)
	}
	return text, nil
}

// Save overwrites the entry. An empty text is stored as is.
func (j *Journal) Save(ctx context.Context, id, text string) error {
	if err := j.kv.Set(ctx, kvstore.JournalKey(id), text); err != nil {
		return fmt.Errorf("persist journal: %w", err)
	}
	return nil
}
