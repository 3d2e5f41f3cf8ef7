package advisor

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/gateway"
)

const (
	// MentorNotePrefix tags mentor replies saved to the planner.
	MentorNotePrefix = "Mentor Idea: "
	// InsightNotePrefix tags analytics insights saved to the planner.
	InsightNotePrefix = "AI Insight:\n"
)

// ChatEvent is one step of a mentor reply. A Fallback event replaces the
// rest of the reply and is the last event.
type ChatEvent struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Chat streams the mentor's reply to the last message in history.
func (a *Advisor) Chat(ctx context.Context, history []gateway.ChatMessage, ob *appdata.Onboarding) iter.Seq[ChatEvent] {
	return func(yield func(ChatEvent) bool) {
		for text, err := range a.gen.StreamChat(ctx, history, ob) {
			if err != nil {
				slog.Warn("AI request failed, using fallback", "op", "chat", "error", err)
				yield(ChatEvent{Text: a.fallbacks.Chat, Fallback: true})
				return
			}
			if !yield(ChatEvent{Text: text}) {
				return
			}
		}
	}
}

// Reply collects a whole mentor reply. fallback reports whether the
// fallback text was used; partial text received before a failure is
// dropped.
func (a *Advisor) Reply(ctx context.Context, history []gateway.ChatMessage, ob *appdata.Onboarding) (reply string, fallback bool) {
	var b strings.Builder
	for ev := range a.Chat(ctx, history, ob) {
		if ev.Fallback {
			return ev.Text, true
		}
		b.WriteString(ev.Text)
	}
	return b.String(), false
}

// Greeting opens a mentor conversation.
func Greeting(name string, ob *appdata.Onboarding) string {
	if name == "" {
		name = "beautiful soul"
	}
	growth := ""
	if ob != nil && ob.GrowthArea != "" {
		growth = " I see you're working on " + ob.GrowthArea + "."
	}
	return fmt.Sprintf("Hey %s, welcome to your space.%s How can I support you today? ✨", name, growth)
}

// CompassPrompt starts a guided Clarity Compass session for goal.
func CompassPrompt(goal string) string {
	return `I'd like to start a "Clarity Compass" session. My goal is: "` + goal + `". Please don't give me a plan right away. Instead, act as a gentle, soulful guide and start by asking me insightful questions to help me explore the heart of this goal. Let's start with the feeling I want to create for my audience.`
}
