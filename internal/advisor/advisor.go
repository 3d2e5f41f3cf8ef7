// Package advisor puts the views in front of the gateway. Every method
// returns something showable: when a call fails the error is logged and
// the view gets the matching fallback text instead.
//
// Calls are made once with no retry and no de-duplication. Two requests
// for the same view can be in flight together; whichever finishes last is
// what the caller sees.
package advisor

import (
	"context"
	"iter"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
)

// Generator is the part of gateway.Client the advisor uses.
type Generator interface {
	AnalyticsInsights(ctx context.Context, perf []appdata.PlatformPerformance, ob *appdata.Onboarding) (string, error)
	ReflectionPrompt(ctx context.Context, perf []appdata.PlatformPerformance, journal string, ob *appdata.Onboarding) (string, error)
	ContentIdeas(ctx context.Context, prompt string, ob *appdata.Onboarding) (string, error)
	VisualMockup(ctx context.Context, idea string) (string, error)
	SoundscapeScript(ctx context.Context, feeling string) (string, error)
	Speech(ctx context.Context, script string) (string, error)
	StreamChat(ctx context.Context, history []gateway.ChatMessage, ob *appdata.Onboarding) iter.Seq2[string, error]
}

// Fallbacks are shown in place of a failed call, one per view.
type Fallbacks struct {
	Analytics  string
	Ideas      string
	Reflection string
	Mockup     string
	Chat       string
	Soundscape string
	Audio      string
}

func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		Analytics:  "Oh, honey. It seems there was a little hiccup getting your insights. Let's take a breath and try again in a moment. 🙏",
		Ideas:      "Oh, honey. It seems there was a little hiccup getting your ideas. Let's take a breath and try again in a moment. 🙏",
		Reflection: "My love, it seems my reflective energy is a bit low right now. Let's connect on this again in a little while. 🙏",
		Mockup:     "Oh, love. My creative spark seems to be dim at the moment. Let's give it a little rest and try again soon. 🙏",
		Chat:       "It seems there was a little glitch in our connection. Let's try that again. 🙏",
		Soundscape: "Something went wrong while creating your soundscape. Let's try again in a moment. 🙏",
		Audio:      "Could not generate the audio at this moment. Please try again. 🙏",
	}
}

type Advisor struct {
	gen       Generator
	fallbacks Fallbacks
}

func New(gen Generator, fallbacks Fallbacks) *Advisor {
	return &Advisor{gen: gen, fallbacks: fallbacks}
}

func (a *Advisor) Fallbacks() Fallbacks {
	return a.fallbacks
}

func (a *Advisor) orFallback(op string, text string, err error, fallback string) string {
	if err != nil {
		slog.Warn("AI request failed, using fallback", "op", op, "error", err)
		return fallback
	}
	return text
}

// Insights reviews platform performance.
func (a *Advisor) Insights(ctx context.Context, perf []appdata.PlatformPerformance, ob *appdata.Onboarding) string {
	text, err := a.gen.AnalyticsInsights(ctx, perf, ob)
	return a.orFallback("analytics_insights", text, err, a.fallbacks.Analytics)
}

func (a *Advisor) Reflection(ctx context.Context, perf []appdata.PlatformPerformance, journal string, ob *appdata.Onboarding) string {
	text, err := a.gen.ReflectionPrompt(ctx, perf, journal, ob)
	return a.orFallback("reflection_prompt", text, err, a.fallbacks.Reflection)
}

func (a *Advisor) Ideas(ctx context.Context, prompt string, ob *appdata.Onboarding) string {
	text, err := a.gen.ContentIdeas(ctx, prompt, ob)
	return a.orFallback("content_ideas", text, err, a.fallbacks.Ideas)
}

func (a *Advisor) Mockup(ctx context.Context, idea string) string {
	text, err := a.gen.VisualMockup(ctx, idea)
	return a.orFallback("visual_mockup", text, err, a.fallbacks.Mockup)
}
