package mindset

import (
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/appstest"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_RoundTrip(t *testing.T) {
	h := appstest.New(t, New())

	var got JournalResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodGet, "/api/p/mindset/journal", nil), &got)
	assert.Empty(t, got.Text)

	resp := h.Do(t, http.MethodPut, "/api/p/mindset/journal", dto.TextRequest{Text: "Feeling stretched thin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	appstest.DecodeJSON(t, h.Do(t, http.MethodGet, "/api/p/mindset/journal", nil), &got)
	assert.Equal(t, "Feeling stretched thin", got.Text)
}

func TestReflection_UsesJournal(t *testing.T) {
	h := appstest.New(t, New())
	h.Gen.Text = "What would rest look like today?"

	resp := h.Do(t, http.MethodPut, "/api/p/mindset/journal", dto.TextRequest{Text: "tired"})
	resp.Body.Close()

	var got ReflectionResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodPost, "/api/p/mindset/reflection", nil), &got)
	assert.Equal(t, "What would rest look like today?", got.Prompt)
	assert.Equal(t, []string{"tired"}, h.Gen.Prompts)

	h.Gen.Err = errors.New("down")
	appstest.DecodeJSON(t, h.Do(t, http.MethodPost, "/api/p/mindset/reflection", nil), &got)
	assert.Equal(t, advisor.DefaultFallbacks().Reflection, got.Prompt)
}

func TestAffirmations(t *testing.T) {
	h := appstest.New(t, New())

	var got AffirmationsResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodGet, "/api/p/mindset/affirmations", nil), &got)
	require.Len(t, got.Affirmations, 3)
	// 2024-03-15 is day 75; 75 % 12 = 3
	assert.Equal(t, "I release the need for perfection and embrace good enough.", got.Affirmations[0])
}

func TestSoundscape_ReturnsWAV(t *testing.T) {
	h := appstest.New(t, New())
	h.Gen.Script = "Breathe in..."
	// 2400 samples of silence: 100ms at 24kHz
	h.Gen.Audio = base64.StdEncoding.EncodeToString(make([]byte, 4800))

	var got SoundscapeResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodPost, "/api/p/mindset/soundscape", SoundscapeRequest{Feeling: "anxious"}), &got)
	assert.Equal(t, "Breathe in...", got.Script)
	assert.Equal(t, int64(100), got.DurationMs)
	assert.Empty(t, got.Message)

	wav, err := base64.StdEncoding.DecodeString(got.Audio)
	require.NoError(t, err)
	assert.Len(t, wav, 44+4800)
	assert.Equal(t, "RIFF", string(wav[:4]))
}

func TestSoundscape_NoAudio(t *testing.T) {
	h := appstest.New(t, New())
	h.Gen.Script = "Breathe in..."
	h.Gen.AudioErr = gateway.ErrNoAudio

	var got SoundscapeResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodPost, "/api/p/mindset/soundscape", SoundscapeRequest{Feeling: "anxious"}), &got)
	assert.Empty(t, got.Audio)
	assert.Equal(t, advisor.DefaultFallbacks().Audio, got.Message)
}

func TestSoundscape_RequiresFeeling(t *testing.T) {
	h := appstest.New(t, New())

	resp := h.Do(t, http.MethodPost, "/api/p/mindset/soundscape", SoundscapeRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
