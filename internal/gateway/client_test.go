package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	path   string
	query  string
	apiKey string
	body   generateRequest
}

type recorder struct {
	mu   sync.Mutex
	last captured
}

func (r *recorder) get() captured {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, got captured)) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got captured
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.apiKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got.body)

		rec.mu.Lock()
		rec.last = got
		rec.mu.Unlock()
		handler(w, got)
	}))
	t.Cleanup(srv.Close)

	return New(Options{APIKey: "test-key", BaseURL: srv.URL + "/"}), rec
}

func textReply(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"role":"model","parts":[{"text":%q}]}}]}`, text)
}

func TestAnalyticsInsights_SendsPromptAndSampling(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, _ captured) {
		_, _ = io.WriteString(w, textReply("Your Reels are glowing ✨"))
	})

	text, err := c.AnalyticsInsights(context.Background(), goldenPerf, nil)
	require.NoError(t, err)
	assert.Equal(t, "Your Reels are glowing ✨", text)

	got := rec.get()
	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", got.path)
	assert.Equal(t, "test-key", got.apiKey)
	require.NotNil(t, got.body.SystemInstruction)
	assert.Equal(t, bigSisInstruction, got.body.SystemInstruction.Parts[0].Text)
	require.NotNil(t, got.body.GenerationConfig)
	assert.Equal(t, 0.7, got.body.GenerationConfig.Temperature)
	assert.Equal(t, 0.95, got.body.GenerationConfig.TopP)
	assert.Equal(t, 64, got.body.GenerationConfig.TopK)
	require.Len(t, got.body.Contents, 1)
	assert.Equal(t, "user", got.body.Contents[0].Role)
	assert.Equal(t, analyticsPrompt(goldenPerf, nil), got.body.Contents[0].Parts[0].Text)
}

func TestReflectionPrompt_StripsQuotes(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ captured) {
		_, _ = io.WriteString(w, textReply(`"What would ease feel like today?"`))
	})

	text, err := c.ReflectionPrompt(context.Background(), nil, "tired", nil)
	require.NoError(t, err)
	assert.Equal(t, "What would ease feel like today?", text)
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ captured) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"error":{"message":"quota"}}`)
		})
		_, err := c.ContentIdeas(context.Background(), "x", nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "quota")
	})

	t.Run("no candidates", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ captured) {
			_, _ = io.WriteString(w, `{"candidates":[]}`)
		})
		_, err := c.VisualMockup(context.Background(), "x")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("bad json", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ captured) {
			_, _ = io.WriteString(w, `not json`)
		})
		_, err := c.SoundscapeScript(context.Background(), "x")
		assert.Error(t, err)
	})

	t.Run("no key", func(t *testing.T) {
		c := New(Options{BaseURL: "http://127.0.0.1:1"})
		_, err := c.AnalyticsInsights(context.Background(), nil, nil)
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})
}

func TestSpeech(t *testing.T) {
	c, rec := newTestClient(t, func(w http.ResponseWriter, _ captured) {
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16;rate=24000","data":"AAD/fw=="}}]}}]}`)
	})

	data, err := c.Speech(context.Background(), "You are safe.")
	require.NoError(t, err)
	assert.Equal(t, "AAD/fw==", data)

	got := rec.get()
	assert.Equal(t, "/models/gemini-2.5-flash-preview-tts:generateContent", got.path)
	assert.Nil(t, got.body.SystemInstruction)
	require.NotNil(t, got.body.GenerationConfig)
	assert.Equal(t, []string{"AUDIO"}, got.body.GenerationConfig.ResponseModalities)
	require.NotNil(t, got.body.GenerationConfig.SpeechConfig)
	assert.Equal(t, "Kore", got.body.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
	assert.Equal(t, "You are safe.", got.body.Contents[0].Parts[0].Text)
}

func TestSpeech_NoAudio(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ captured) {
		_, _ = io.WriteString(w, textReply("I can only talk"))
	})

	_, err := c.Speech(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNoAudio)
}
