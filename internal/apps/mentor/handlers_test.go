package mentor

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/advisor"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps/appstest"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/dto"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	h := appstest.New(t, New())
	require.NoError(t, h.Deps.Data.SaveOnboarding(context.Background(), appstest.User, appdata.Onboarding{
		GrowthArea: "my podcast", SuccessFeeling: "free",
	}))

	var got GreetingResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodGet, "/api/p/mentor/greeting", nil), &got)
	assert.Equal(t, "Hey Maya, welcome to your space. I see you're working on my podcast. How can I support you today? ✨", got.Greeting)
}

func TestChat_StreamsFrames(t *testing.T) {
	h := appstest.New(t, New())
	h.Gen.Chunks = []string{"Hello ", "love"}

	history := []gateway.ChatMessage{
		{Role: gateway.RoleModel, Text: "Hi there"},
		{Role: gateway.RoleUser, Text: "How do I grow?"},
	}
	resp := h.Do(t, http.MethodPost, "/api/p/mentor/chat", ChatRequest{Messages: history})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body := appstest.Body(t, resp)
	assert.Equal(t, "data: {\"text\":\"Hello \"}\n\ndata: {\"text\":\"love\"}\n\nevent: done\ndata: {}\n\n", body)
	assert.Equal(t, history, h.Gen.LastHistory())
}

func TestChat_FallbackEndsStream(t *testing.T) {
	h := appstest.New(t, New())
	h.Gen.Chunks = []string{"Hel"}
	h.Gen.ChunkErr = errors.New("connection reset")

	resp := h.Do(t, http.MethodPost, "/api/p/mentor/chat", ChatRequest{Messages: []gateway.ChatMessage{
		{Role: gateway.RoleUser, Text: "hi"},
	}})
	body := appstest.Body(t, resp)
	assert.Contains(t, body, "event: fallback\n"+string(gateway.SSEFrame(advisor.DefaultFallbacks().Chat)))
}

func TestChat_NonStreaming(t *testing.T) {
	h := appstest.New(t, New())
	h.Gen.Chunks = []string{"Breathe ", "first."}

	var got ReplyResponse
	appstest.DecodeJSON(t, h.Do(t, http.MethodPost, "/api/p/mentor/chat?stream=false", ChatRequest{Messages: []gateway.ChatMessage{
		{Role: gateway.RoleUser, Text: "I'm overwhelmed"},
	}}), &got)
	assert.Equal(t, ReplyResponse{Reply: "Breathe first."}, got)
}

func TestChat_RejectsBadHistory(t *testing.T) {
	h := appstest.New(t, New())

	for name, msgs := range map[string][]gateway.ChatMessage{
		"empty":      nil,
		"ends model": {{Role: gateway.RoleUser, Text: "a"}, {Role: gateway.RoleModel, Text: "b"}},
		"bad role":   {{Role: "system", Text: "a"}, {Role: gateway.RoleUser, Text: "b"}},
	} {
		t.Run(name, func(t *testing.T) {
			resp := h.Do(t, http.MethodPost, "/api/p/mentor/chat", ChatRequest{Messages: msgs})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestCompass_SendsGuidedPrompt(t *testing.T) {
	h := appstest.New(t, New())
	h.Gen.Chunks = []string{"What feeling?"}

	resp := h.Do(t, http.MethodPost, "/api/p/mentor/compass", CompassRequest{Goal: "launch a course"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, appstest.Body(t, resp), `data: {"text":"What feeling?"}`)
	assert.Equal(t, []gateway.ChatMessage{
		{Role: gateway.RoleUser, Text: advisor.CompassPrompt("launch a course")},
	}, h.Gen.LastHistory())
}

func TestSaveNote(t *testing.T) {
	h := appstest.New(t, New())

	resp := h.Do(t, http.MethodPost, "/api/p/mentor/note", dto.TextRequest{Text: "Host a live Q&A"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, "- Mentor Idea: Host a live Q&A\nStart the big launch! ✨", h.Record(t).CalendarNotes[15])
}
