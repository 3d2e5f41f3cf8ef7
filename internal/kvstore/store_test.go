package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sq,
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := st.Get(context.Background(), "nope")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, v)
		})
	}
}

func TestStore_SetOverwriteDelete(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Set(ctx, "k", "one"))
			require.NoError(t, st.Set(ctx, "k", "two"))

			v, ok, err := st.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "two", v)

			require.NoError(t, st.Delete(ctx, "k"))
			require.NoError(t, st.Delete(ctx, "k"), "deleting an absent key is fine")

			_, ok, err = st.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_EmptyValueIsPresent(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Set(ctx, "blank", ""))
			v, ok, err := st.Get(ctx, "blank")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "", v)
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, CurrentUserKey, "maya@example.com"))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	v, ok, err := second.Get(ctx, CurrentUserKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "maya@example.com", v)
}

func TestKeys_AreScopedPerIdentity(t *testing.T) {
	assert.Equal(t, "soulfulHubData_v5_a@b.co", DataKey("a@b.co"))
	assert.Equal(t, "soulfulHubPic_a@b.co", AvatarKey("a@b.co"))
	assert.Equal(t, "soulfulHubOnboarding_a@b.co", OnboardingKey("a@b.co"))
	assert.Equal(t, "soulfulHubJournal_a@b.co", JournalKey("a@b.co"))
	assert.Equal(t, "soulfulHubTheme_a@b.co", ThemeKey("a@b.co"))
	assert.Equal(t, "soulfulHubCustomColors_a@b.co", CustomColorsKey("a@b.co"))
	assert.NotEqual(t, DataKey("a@b.co"), DataKey("c@d.co"))
}
