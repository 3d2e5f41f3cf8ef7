package gateway

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
)

// AnalyticsInsights asks for gentle feedback on platform performance.
func (c *Client) AnalyticsInsights(ctx context.Context, perf []appdata.PlatformPerformance, ob *appdata.Onboarding) (string, error) {
	return c.generateText(ctx, bigSisInstruction, analyticsPrompt(perf, ob))
}

// ReflectionPrompt returns a single journaling question. Double quotes are
// stripped from the reply.
func (c *Client) ReflectionPrompt(ctx context.Context, perf []appdata.PlatformPerformance, journal string, ob *appdata.Onboarding) (string, error) {
	text, err := c.generateText(ctx, reflectionInstruction, reflectionPrompt(perf, journal, ob))
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(text, `"`, ""), nil
}

func (c *Client) ContentIdeas(ctx context.Context, prompt string, ob *appdata.Onboarding) (string, error) {
	return c.generateText(ctx, ideasInstruction, ideasPrompt(prompt, ob))
}

// VisualMockup describes a post layout for a content idea.
func (c *Client) VisualMockup(ctx context.Context, idea string) (string, error) {
	return c.generateText(ctx, mockupInstruction, mockupPrompt(idea))
}

// SoundscapeScript writes a short calming script for the given feeling.
// A refusal comes back as ordinary text starting with RefusalMarker.
func (c *Client) SoundscapeScript(ctx context.Context, feeling string) (string, error) {
	return c.generateText(ctx, soundscapeInstruction, soundscapePrompt(feeling))
}
