package advisor

import (
	"context"
	"encoding/base64"
	"errors"
	"iter"
	"testing"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

type stubGenerator struct {
	text      string
	err       error
	script    string
	scriptErr error
	speech    string
	speechErr error
	chunks    []string
	chunkErr  error

	speechCalls int
}

func (s *stubGenerator) AnalyticsInsights(context.Context, []appdata.PlatformPerformance, *appdata.Onboarding) (string, error) {
	return s.text, s.err
}

func (s *stubGenerator) ReflectionPrompt(context.Context, []appdata.PlatformPerformance, string, *appdata.Onboarding) (string, error) {
	return s.text, s.err
}

func (s *stubGenerator) ContentIdeas(context.Context, string, *appdata.Onboarding) (string, error) {
	return s.text, s.err
}

func (s *stubGenerator) VisualMockup(context.Context, string) (string, error) {
	return s.text, s.err
}

func (s *stubGenerator) SoundscapeScript(context.Context, string) (string, error) {
	return s.script, s.scriptErr
}

func (s *stubGenerator) Speech(context.Context, string) (string, error) {
	s.speechCalls++
	return s.speech, s.speechErr
}

func (s *stubGenerator) StreamChat(context.Context, []gateway.ChatMessage, *appdata.Onboarding) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, c := range s.chunks {
			if !yield(c, nil) {
				return
			}
		}
		if s.chunkErr != nil {
			yield("", s.chunkErr)
		}
	}
}

func TestTextCalls_PassThroughOnSuccess(t *testing.T) {
	a := New(&stubGenerator{text: "Lean into Reels 🌿"}, DefaultFallbacks())
	ctx := context.Background()

	assert.Equal(t, "Lean into Reels 🌿", a.Insights(ctx, nil, nil))
	assert.Equal(t, "Lean into Reels 🌿", a.Reflection(ctx, nil, "", nil))
	assert.Equal(t, "Lean into Reels 🌿", a.Ideas(ctx, "x", nil))
	assert.Equal(t, "Lean into Reels 🌿", a.Mockup(ctx, "x"))
}

func TestTextCalls_FailureReturnsConfiguredFallback(t *testing.T) {
	fb := DefaultFallbacks()
	fb.Analytics = "custom analytics fallback"
	a := New(&stubGenerator{err: errUpstream}, fb)
	ctx := context.Background()

	assert.Equal(t, "custom analytics fallback", a.Insights(ctx, nil, nil))
	assert.Equal(t, fb.Reflection, a.Reflection(ctx, nil, "", nil))
	assert.Equal(t, fb.Ideas, a.Ideas(ctx, "x", nil))
	assert.Equal(t, fb.Mockup, a.Mockup(ctx, "x"))
}

func TestSoundscape(t *testing.T) {
	fb := DefaultFallbacks()
	ctx := context.Background()
	pcm := base64.StdEncoding.EncodeToString([]byte{0, 0, 0, 64})

	t.Run("success", func(t *testing.T) {
		a := New(&stubGenerator{script: "You are safe.", speech: pcm}, fb)
		got := a.Soundscape(ctx, "anxious")
		assert.Equal(t, "You are safe.", got.Script)
		require.NotNil(t, got.Clip)
		assert.Len(t, got.Clip.Samples, 2)
		assert.Empty(t, got.Message)
	})

	t.Run("refusal skips speech", func(t *testing.T) {
		refusal := "I'm having a little trouble creating that for you right now, but I'm sending you a wave of peace. 🙏"
		gen := &stubGenerator{script: refusal}
		got := New(gen, fb).Soundscape(ctx, "x")
		assert.Equal(t, refusal, got.Message)
		assert.Nil(t, got.Clip)
		assert.Zero(t, gen.speechCalls)
	})

	t.Run("script failure", func(t *testing.T) {
		got := New(&stubGenerator{scriptErr: errUpstream}, fb).Soundscape(ctx, "x")
		assert.Equal(t, fb.Soundscape, got.Message)
	})

	t.Run("no audio", func(t *testing.T) {
		got := New(&stubGenerator{script: "You are safe.", speechErr: gateway.ErrNoAudio}, fb).Soundscape(ctx, "x")
		assert.Equal(t, fb.Audio, got.Message)
		assert.Equal(t, "You are safe.", got.Script)
	})

	t.Run("speech failure", func(t *testing.T) {
		got := New(&stubGenerator{script: "You are safe.", speechErr: errUpstream}, fb).Soundscape(ctx, "x")
		assert.Equal(t, fb.Soundscape, got.Message)
	})

	t.Run("bad audio", func(t *testing.T) {
		got := New(&stubGenerator{script: "You are safe.", speech: "!!"}, fb).Soundscape(ctx, "x")
		assert.Equal(t, fb.Soundscape, got.Message)
		assert.Nil(t, got.Clip)
	})
}

func TestChat(t *testing.T) {
	fb := DefaultFallbacks()
	ctx := context.Background()

	reply, fallback := New(&stubGenerator{chunks: []string{"Hey ", "love"}}, fb).Reply(ctx, nil, nil)
	assert.Equal(t, "Hey love", reply)
	assert.False(t, fallback)

	var events []ChatEvent
	for ev := range New(&stubGenerator{chunks: []string{"Hey "}, chunkErr: errUpstream}, fb).Chat(ctx, nil, nil) {
		events = append(events, ev)
	}
	assert.Equal(t, []ChatEvent{{Text: "Hey "}, {Text: fb.Chat, Fallback: true}}, events)

	reply, fallback = New(&stubGenerator{chunkErr: errUpstream}, fb).Reply(ctx, nil, nil)
	assert.Equal(t, fb.Chat, reply)
	assert.True(t, fallback)
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hey beautiful soul, welcome to your space. How can I support you today? ✨", Greeting("", nil))
	assert.Equal(t,
		"Hey Maya, welcome to your space. I see you're working on Branding. How can I support you today? ✨",
		Greeting("Maya", &appdata.Onboarding{GrowthArea: "Branding"}))
}

func TestCompassPrompt(t *testing.T) {
	assert.Equal(t,
		`I'd like to start a "Clarity Compass" session. My goal is: "Launch a course". Please don't give me a plan right away. Instead, act as a gentle, soulful guide and start by asking me insightful questions to help me explore the heart of this goal. Let's start with the feeling I want to create for my audience.`,
		CompassPrompt("Launch a course"))
}
